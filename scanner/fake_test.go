package scanner

import (
	"fmt"

	"github.com/tankbusta/rekall/addrspace"
)

// fakeAddressSpace is an in-memory AddressSpace backed by one physical byte
// slice and an explicit list of virtual ranges mapping into it. It exists
// purely to exercise Scanner/ScannerGroup against the scenarios in spec §8.
type fakeAddressSpace struct {
	ranges  []addrspace.AddressRange
	phys    []byte
	session *fakeSession
}

func newFakeAddressSpace(phys []byte, ranges []addrspace.AddressRange) *fakeAddressSpace {
	return &fakeAddressSpace{phys: phys, ranges: ranges, session: &fakeSession{}}
}

func (f *fakeAddressSpace) GetAddressRanges(start, end uint64) ([]addrspace.AddressRange, error) {
	var out []addrspace.AddressRange
	for _, r := range f.ranges {
		if r.End() <= start || r.VirtStart >= end {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAddressSpace) ReadPhys(physOffset, length uint64) ([]byte, error) {
	if physOffset+length > uint64(len(f.phys)) {
		return nil, fmt.Errorf("fakeAddressSpace: read [%d, %d) out of bounds (len %d)",
			physOffset, physOffset+length, len(f.phys))
	}
	out := make([]byte, length)
	copy(out, f.phys[physOffset:physOffset+length])
	return out, nil
}

func (f *fakeAddressSpace) Session() addrspace.Session {
	return f.session
}

type fakeSession struct {
	reports int
}

func (s *fakeSession) ReportProgress(format string, args ...any) {
	s.reports++
}

// identityRange builds a single AddressRange with VirtStart == PhysStart,
// the common case in these tests where the "physical" backing buffer is
// laid out exactly like the virtual space it represents.
func identityRange(start, length uint64) addrspace.AddressRange {
	return addrspace.AddressRange{VirtStart: start, PhysStart: start, Length: length}
}
