package checks

import (
	"bytes"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/internal/conv"
	"github.com/tankbusta/rekall/rekallerr"
)

// hit is one Aho-Corasick match found in the buffer currently cached by a
// MultiStringCheck, recorded by its relative offset into that buffer.
type hit struct {
	relOffset int
	needle    []byte
	index     int
}

// MultiStringCheck matches any of a fixed set of needles using an
// Aho-Corasick automaton — the same engine the teacher's own regex
// compiler falls back to once a pattern has too many literal alternatives
// for its Teddy prefilter (meta.UseAhoCorasick).
//
// Per spec §4.5: on first sight of a new buffer (identified by base
// offset), every hit in the buffer is collected once and cached sorted in
// descending order by relative offset, so the buffer's monotone scan can
// pop hits off the tail in amortized O(1).
type MultiStringCheck struct {
	automaton      *ahocorasick.Automaton
	needles        [][]byte
	maxLen         int
	lastBaseOffset uint64
	haveCached     bool
	hits           []hit // descending by relOffset; next expected hit is hits[len(hits)-1]
	lastMatched    int
}

// NewMultiStringCheck builds an Aho-Corasick automaton over needles.
// needles must be non-empty; an empty needle list is a construction error
// (spec §4.5).
func NewMultiStringCheck(needles [][]byte) (*MultiStringCheck, error) {
	if len(needles) == 0 {
		return nil, rekallerr.ErrNoNeedles
	}

	builder := ahocorasick.NewBuilder()
	maxLen := 0
	cp := make([][]byte, len(needles))
	for i, n := range needles {
		builder.AddPattern(n)
		if len(n) > maxLen {
			maxLen = len(n)
		}
		cp[i] = n
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &MultiStringCheck{automaton: automaton, needles: cp, maxLen: maxLen}, nil
}

// indexOf returns the position of needle within the set this check was
// built from, or 0 if somehow not found (the automaton can't report a
// match that isn't one of the patterns it was built with). Ambiguous only
// when two needles are byte-identical, in which case either index is an
// equally valid answer since the matched bytes are the same either way.
func (c *MultiStringCheck) indexOf(needle []byte) int {
	for i, n := range c.needles {
		if bytes.Equal(n, needle) {
			return i
		}
	}
	return 0
}

// MaxLen implements MaxLenHint.
func (c *MultiStringCheck) MaxLen() int {
	return c.maxLen
}

// refresh rebuilds the hit cache for buf if it hasn't been computed yet for
// this base offset.
func (c *MultiStringCheck) refresh(buf *addrspace.BufferView) {
	if c.haveCached && buf.BaseOffset == c.lastBaseOffset {
		return
	}

	c.hits = c.hits[:0]
	pos := 0
	for pos <= len(buf.Data) {
		m := c.automaton.Find(buf.Data[:], pos)
		if m == nil {
			break
		}
		needle := append([]byte(nil), buf.Data[m.Start:m.End]...)
		c.hits = append(c.hits, hit{relOffset: m.Start, needle: needle, index: c.indexOf(needle)})
		// Resume one byte past this hit's start, not at its end, so a hit
		// that starts inside this one is still collected.
		pos = m.Start + 1
	}

	// Descending by relOffset so the next expected hit sits at the tail.
	sort.Slice(c.hits, func(i, j int) bool { return c.hits[i].relOffset > c.hits[j].relOffset })

	c.lastBaseOffset = buf.BaseOffset
	c.haveCached = true
}

// Check implements Check. The Scanner is required to visit offsets in
// non-decreasing order within one buffer; this pops stale hits (those the
// cursor has already passed) and reports a match only when the offset
// exactly matches the hit at the tail of the stack.
func (c *MultiStringCheck) Check(buf *addrspace.BufferView, absOff uint64) ([]byte, bool) {
	c.refresh(buf)

	dataOffset := buf.BufferOffset(absOff)
	for len(c.hits) > 0 {
		top := c.hits[len(c.hits)-1]
		switch {
		case top.relOffset == dataOffset:
			c.hits = c.hits[:len(c.hits)-1]
			c.lastMatched = top.index
			return top.needle, true
		case top.relOffset < dataOffset:
			c.hits = c.hits[:len(c.hits)-1]
		default:
			return nil, false
		}
	}
	return nil, false
}

// MatchedIndex implements IndexedCheck, reporting the position within the
// original needle list of the most recent successful Check call's match.
func (c *MultiStringCheck) MatchedIndex() int {
	return c.lastMatched
}

// Skip implements Check. It refreshes the hit cache itself: the Scanner
// calls Skip at every visited offset, including ones where an earlier
// constraint failed and this check's Check was never reached.
func (c *MultiStringCheck) Skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	c.refresh(buf)

	dataOffset := buf.BufferOffset(absOff)
	for len(c.hits) > 0 {
		top := c.hits[len(c.hits)-1]
		if top.relOffset < dataOffset {
			c.hits = c.hits[:len(c.hits)-1]
			continue
		}
		return conv.IntToUint64(top.relOffset - dataOffset)
	}
	return buf.End() - absOff
}
