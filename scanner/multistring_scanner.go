package scanner

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/checks"
)

// NewMultiStringScanner builds a Scanner wired with a single
// MultiStringCheck over needles. Because the Scanner kernel already
// reports the needle a single-check intersection matched, this is a thin
// convenience constructor rather than a distinct type (spec §4.8).
func NewMultiStringScanner(name string, as addrspace.AddressSpace, opts Options, needles [][]byte) (*Scanner, error) {
	check, err := checks.NewMultiStringCheck(needles)
	if err != nil {
		return nil, err
	}

	s, err := NewScanner(name, as, opts)
	if err != nil {
		return nil, err
	}
	s.AddCheck(check)
	return s, nil
}
