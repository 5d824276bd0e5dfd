// Package scanner implements the scanning kernel: a Scanner walks an
// AddressSpace in overlapping chunks, evaluates a list of Checks at every
// candidate offset, and yields deduplicated, strictly-ascending hits.
//
// MultiStringScanner and PointerScanner specialize the kernel around a
// single MultiStringCheck; ScannerGroup and DiscontigScannerGroup compose
// many scanners over one address space.
package scanner

import (
	"log/slog"
	"math"

	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/checks"
	"github.com/tankbusta/rekall/rekallerr"
)

// checkSpec is a deferred (name, args) pair used by AddCheckSpec to mirror
// the source's registry-driven build_constraints — constraints named now,
// built lazily on first Scan call so callers can keep adding checks after
// constructing the Scanner.
type checkSpec struct {
	name string
	args map[string]any
}

// Scanner walks an AddressSpace evaluating an ordered list of Checks — the
// intersection of all of them — at every candidate offset, advancing by the
// maximum skip any attached check can prove is safe.
type Scanner struct {
	Name string

	as   addrspace.AddressSpace
	opts Options

	specs       []checkSpec
	constraints []checks.Check
	skippers    []checks.Check
	built       bool

	log *slog.Logger
}

// NewScanner constructs a Scanner named name over as, using opts (which is
// validated immediately). Checks are added afterward via AddCheck or
// AddCheckSpec.
func NewScanner(name string, as addrspace.AddressSpace, opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{
		Name: name,
		as:   as,
		opts: opts,
		log:  slog.Default().With("scanner", name),
	}, nil
}

// AddCheck attaches an already-constructed Check directly, bypassing the
// name-based registry. Must be called before the first Scan.
func (s *Scanner) AddCheck(c checks.Check) {
	s.constraints = append(s.constraints, c)
	s.built = false
}

// AddCheckSpec queues a (name, args) pair to be resolved through the checks
// registry the first time Scan runs (spec §4.7's "lazy constraint build").
func (s *Scanner) AddCheckSpec(name string, args map[string]any) {
	s.specs = append(s.specs, checkSpec{name: name, args: args})
	s.built = false
}

// buildConstraints resolves any pending specs into Checks and computes the
// skipper subset. Safe to call more than once; only does work when new
// specs are pending.
func (s *Scanner) buildConstraints() error {
	if s.built {
		return nil
	}

	for _, spec := range s.specs {
		c, err := checks.Build(spec.name, spec.args)
		if err != nil {
			return err
		}
		s.constraints = append(s.constraints, c)
	}
	s.specs = nil

	s.skippers = s.skippers[:0]
	var maxNeedle int
	for _, c := range s.constraints {
		s.skippers = append(s.skippers, c)
		if h, ok := c.(checks.MaxLenHint); ok && h.MaxLen() > maxNeedle {
			maxNeedle = h.MaxLen()
		}
	}
	if maxNeedle > 0 && uint64(maxNeedle) > s.opts.Overlap {
		s.log.Warn("overlap smaller than longest needle; cross-chunk matches may be missed",
			"overlap", s.opts.Overlap, "needle_len", maxNeedle)
	}

	s.built = true
	return nil
}

// checkAddr evaluates every constraint at absOff against buf, short
// circuiting on the first that doesn't match (spec §4.7 step 6).
//
// The returned Match carries the needle of the last constraint that returned
// a non-nil one and the index of the last constraint implementing
// checks.IndexedCheck; composed multi-check scanners that need every
// constraint's needle should inspect buf/absOff themselves rather than
// relying on this.
// Needle and NeedleIndex stay at their zero values (nil, -1) unless a
// matching constraint implements checks.IndexedCheck or otherwise returns a
// non-nil needle — per spec §3, a plain StringCheck/RegexCheck/pointer
// match reports offset alone.
func (s *Scanner) checkAddr(buf *addrspace.BufferView, absOff uint64) (Match, bool) {
	var last Match
	last.NeedleIndex = -1
	for _, c := range s.constraints {
		needle, ok := c.Check(buf, absOff)
		if !ok {
			return Match{}, false
		}
		if needle != nil {
			last.Needle = needle
		}
		if ic, ok := c.(checks.IndexedCheck); ok {
			last.NeedleIndex = ic.MatchedIndex()
		}
	}
	last.Offset = absOff
	return last, true
}

// skip returns the Scanner-level skip floor at absOff: the maximum of every
// attached skipper's Skip, with a minimum of 1 to guarantee progress
// (spec §4.2, §4.7 step 6).
func (s *Scanner) skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	var best uint64 = 1
	for _, c := range s.skippers {
		if v := c.Skip(buf, absOff); v > best {
			best = v
		}
	}
	return best
}

// Scan walks the address space from start for up to maxlen bytes (0 means
// "until there is no more data"), invoking yield once per hit in strictly
// increasing offset order. Scan stops early if yield returns false. A read
// error from the address space terminates the scan and is returned; any
// hits already delivered to yield remain valid.
func (s *Scanner) Scan(start, maxlen uint64, yield func(Match) bool) error {
	if err := s.buildConstraints(); err != nil {
		return err
	}

	var end uint64
	if maxlen == 0 {
		end = math.MaxUint64
	} else {
		end = addSaturating(start, maxlen)
	}

	ranges, err := s.as.GetAddressRanges(start, end)
	if err != nil {
		return &rekallerr.ReadError{Offset: start, Err: err}
	}

	var overlap []byte
	var lastReportedHit uint64
	haveReported := false
	var chunkEnd uint64

	session := s.as.Session()

	for _, run := range ranges {
		rangeEnd := run.End()
		if rangeEnd < start {
			continue
		}
		if run.VirtStart > end {
			break
		}

		rangeStart := maxU64(run.VirtStart, start)
		chunkOffset := rangeStart
		var buf addrspace.BufferView

		for chunkOffset < end && chunkOffset < rangeEnd {
			if session != nil {
				session.ReportProgress("scanning 0x%08x with %s", chunkOffset, s.Name)
			}

			if chunkOffset != chunkEnd {
				// A gap since the last chunk (new range, or the very
				// first chunk): stitching bytes across it would splice
				// unrelated memory together, so drop any carried overlap.
				overlap = nil
			}

			chunkSize := minU64(s.opts.BlockSize, rangeEnd-chunkOffset)
			chunkSize = minU64(chunkSize, end-chunkOffset)
			chunkEnd = chunkOffset + chunkSize

			physOffset := run.PhysStart + (chunkOffset - run.VirtStart)
			fresh, readErr := s.as.ReadPhys(physOffset, chunkSize)
			if readErr != nil {
				return &rekallerr.ReadError{Offset: physOffset, Length: chunkSize, Err: readErr}
			}

			data := make([]byte, 0, len(overlap)+len(fresh))
			data = append(data, overlap...)
			data = append(data, fresh...)
			buf.Assign(data, chunkOffset-uint64(len(overlap)))

			if s.opts.Overlap > 0 {
				overlap = tail(buf.Data, s.opts.Overlap)
			}

			scanOffset := buf.BaseOffset
			for scanOffset < buf.End() {
				m, ok := s.checkAddr(&buf, scanOffset)
				if ok && (!haveReported || scanOffset > lastReportedHit) {
					haveReported = true
					lastReportedHit = scanOffset
					if !yield(m) {
						return nil
					}
				}

				advance := s.skip(&buf, scanOffset)
				if advance > uint64(buf.Len()) {
					advance = uint64(buf.Len())
				}
				if advance < 1 {
					advance = 1
				}
				scanOffset += advance
			}

			chunkOffset = scanOffset
		}
	}

	return nil
}

func addSaturating(a, b uint64) uint64 {
	if b > math.MaxUint64-a {
		return math.MaxUint64
	}
	return a + b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// tail returns the last n bytes of data, or all of it if shorter than n.
// The returned slice is a fresh copy: data's backing array belongs to the
// chunk that's about to be discarded.
func tail(data []byte, n uint64) []byte {
	if uint64(len(data)) <= n {
		cp := make([]byte, len(data))
		copy(cp, data)
		return cp
	}
	start := uint64(len(data)) - n
	cp := make([]byte, n)
	copy(cp, data[start:])
	return cp
}
