package scanner

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/rekallerr"
)

// NamedScanner pairs a Scanner with the name a ScannerGroup reports its
// hits under. A slice of these, rather than a map, is what ScannerGroup
// takes — Go map iteration order is randomized, and spec §5 requires
// emission order within one window to be deterministic even though it's
// unspecified across scanners.
type NamedScanner struct {
	Name    string
	Scanner *Scanner
}

// NamedMatch is one hit from a ScannerGroup, tagged with which of its
// scanners produced it.
type NamedMatch struct {
	Scanner string
	Match   Match
}

// ScannerGroup runs several scanners over the same AddressSpace in one
// pass, windowing the space into BlockSize+Overlap chunks and inviting
// every scanner to scan each window in turn (spec §4.9).
//
// ScannerGroup assumes a single dense window per Scan call; it does not
// itself walk discontiguous address ranges. Use DiscontigScannerGroup for
// that.
type ScannerGroup struct {
	as       addrspace.AddressSpace
	opts     Options
	scanners []NamedScanner
}

// NewScannerGroup constructs a ScannerGroup over as, running every named
// scanner in entries.
func NewScannerGroup(as addrspace.AddressSpace, opts Options, entries []NamedScanner) (*ScannerGroup, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &ScannerGroup{as: as, opts: opts, scanners: entries}, nil
}

// Scan windows [start, start+maxlen) into BlockSize+Overlap chunks and, for
// each window, runs every scanner over it, invoking yield for every hit.
// maxlen must be > 0: unlike a single Scanner, a group has no sentinel for
// "scan until there's no more data" because there's no profile-supplied
// address space ceiling to fall back on.
func (g *ScannerGroup) Scan(start, maxlen uint64, yield func(NamedMatch) bool) error {
	if maxlen == 0 {
		return &rekallerr.ConfigError{Field: "maxlen", Message: "must be > 0 for ScannerGroup.Scan"}
	}

	windowSize := g.opts.BlockSize + g.opts.Overlap
	offset := start
	remaining := maxlen

	for remaining > 0 {
		toRead := minU64(windowSize, remaining)

		for _, ns := range g.scanners {
			stop := false
			err := ns.Scanner.Scan(offset, toRead, func(m Match) bool {
				if !yield(NamedMatch{Scanner: ns.Name, Match: m}) {
					stop = true
					return false
				}
				return true
			})
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}

		offset += g.opts.BlockSize
		if g.opts.BlockSize >= remaining {
			remaining = 0
		} else {
			remaining -= g.opts.BlockSize
		}
	}

	return nil
}

// DiscontigScannerGroup first enumerates the address ranges in scope, then
// delegates to an embedded ScannerGroup once per range — because the plain
// ScannerGroup assumes one dense window and doesn't itself walk ranges
// (spec §4.9).
type DiscontigScannerGroup struct {
	group *ScannerGroup
	as    addrspace.AddressSpace
}

// NewDiscontigScannerGroup constructs a DiscontigScannerGroup over as.
func NewDiscontigScannerGroup(as addrspace.AddressSpace, opts Options, entries []NamedScanner) (*DiscontigScannerGroup, error) {
	g, err := NewScannerGroup(as, opts, entries)
	if err != nil {
		return nil, err
	}
	return &DiscontigScannerGroup{group: g, as: as}, nil
}

// Scan enumerates the address ranges in [offset, offset+maxlen) and runs
// the underlying ScannerGroup once per range, each bounded to that range's
// length.
func (g *DiscontigScannerGroup) Scan(offset, maxlen uint64, yield func(NamedMatch) bool) error {
	if maxlen == 0 {
		return &rekallerr.ConfigError{Field: "maxlen", Message: "must be > 0 for DiscontigScannerGroup.Scan"}
	}

	ranges, err := g.as.GetAddressRanges(offset, offset+maxlen)
	if err != nil {
		return &rekallerr.ReadError{Offset: offset, Err: err}
	}

	for _, r := range ranges {
		stop := false
		err := g.group.Scan(r.VirtStart, r.Length, func(m NamedMatch) bool {
			if !yield(m) {
				stop = true
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
