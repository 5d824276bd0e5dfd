package scanner

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/checks"
)

// pointerCheck wraps a MultiStringCheck but discards everything but the
// offset: spec §3 groups pointer scans with single-string and regex checks
// as "only offset", even though under the hood a pointer scan is found via
// the same Aho-Corasick machinery as a general multi-string check. The
// encoded pointer bytes and which candidate address matched aren't
// reported.
//
// inner is held by a named field rather than embedded so that
// MultiStringCheck's MatchedIndex doesn't get promoted onto pointerCheck —
// embedding it would make pointerCheck satisfy checks.IndexedCheck and leak
// the matched address's position back into Match.NeedleIndex.
type pointerCheck struct {
	inner *checks.MultiStringCheck
}

func (p pointerCheck) Check(buf *addrspace.BufferView, absOff uint64) ([]byte, bool) {
	_, ok := p.inner.Check(buf, absOff)
	return nil, ok
}

func (p pointerCheck) Skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	return p.inner.Skip(buf, absOff)
}

// MaxLen implements MaxLenHint, forwarding to the wrapped check.
func (p pointerCheck) MaxLen() int {
	return p.inner.MaxLen()
}

// NewPointerScanner builds a Scanner that finds direct references to any of
// the given addresses in memory. It takes advantage of the fact that a
// group of related pointers usually shares the same encoded layout, so the
// search is really just a multi-string match over each address encoded
// according to profile's pointer width and byte order (spec §4.8).
//
// One needle is generated per address — not a single combined constraint —
// so a near-miss between two close pointer values can't suppress a hit that
// would otherwise have been reported (preserved from
// original_source/rekall/scan.py's PointerScanner).
func NewPointerScanner(name string, as addrspace.AddressSpace, opts Options, profile addrspace.Profile, addresses []uint64) (*Scanner, error) {
	size := profile.AddressSize()
	needles := make([][]byte, len(addresses))
	for i, addr := range addresses {
		buf := make([]byte, size)
		profile.PutAddress(buf, addr)
		needles[i] = buf
	}

	mc, err := checks.NewMultiStringCheck(needles)
	if err != nil {
		return nil, err
	}

	s, err := NewScanner(name, as, opts)
	if err != nil {
		return nil, err
	}
	s.AddCheck(pointerCheck{mc})
	return s, nil
}
