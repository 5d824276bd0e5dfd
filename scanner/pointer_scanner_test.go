package scanner

import (
	"encoding/binary"
	"testing"

	"github.com/tankbusta/rekall/addrspace"
)

// fakeProfile is a minimal addrspace.Profile for tests: fixed-width
// little-endian pointers, the common case on the architectures rekall
// targets.
type fakeProfile struct {
	size int
}

func (p fakeProfile) AddressSize() int { return p.size }

func (p fakeProfile) PutAddress(buf []byte, addr uint64) {
	switch p.size {
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(addr))
	case 8:
		binary.LittleEndian.PutUint64(buf, addr)
	default:
		panic("fakeProfile: unsupported address size")
	}
}

var _ addrspace.Profile = fakeProfile{}

// TestPointerScannerRoundTrip checks the universal PointerScanner property
// from spec §8: a buffer containing bytes-encoded P[i] at known offsets
// yields exactly those offsets.
func TestPointerScannerRoundTrip(t *testing.T) {
	profile := fakeProfile{size: 8}
	pointers := []uint64{0xdeadbeefcafebabe, 0x0000000000001234, 0xffffffffffffffff}

	phys := make([]byte, 256)
	offsets := []uint64{16, 64, 150}
	for i, addr := range pointers {
		buf := make([]byte, profile.AddressSize())
		profile.PutAddress(buf, addr)
		copy(phys[offsets[i]:], buf)
	}

	as := newFakeAddressSpace(phys, []addrspace.AddressRange{identityRange(0, uint64(len(phys)))})

	sc, err := NewPointerScanner("pointers", as, DefaultOptions(), profile, pointers)
	if err != nil {
		t.Fatalf("NewPointerScanner: %v", err)
	}

	got := map[uint64]bool{}
	if err := sc.Scan(0, uint64(len(phys)), func(m Match) bool {
		got[m.Offset] = true
		if m.Needle != nil {
			t.Errorf("hit at 0x%x: Needle = %v, want nil (pointer scans report offset only)", m.Offset, m.Needle)
		}
		if m.NeedleIndex != -1 {
			t.Errorf("hit at 0x%x: NeedleIndex = %d, want -1 (pointer scans report offset only)", m.Offset, m.NeedleIndex)
		}
		return true
	}); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(got) != len(offsets) {
		t.Fatalf("got %d hits, want %d: %v", len(got), len(offsets), got)
	}
	for _, off := range offsets {
		if !got[off] {
			t.Errorf("missing expected hit at offset %d", off)
		}
	}
}
