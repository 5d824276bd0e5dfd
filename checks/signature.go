package checks

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/internal/conv"
	"github.com/tankbusta/rekall/rekallerr"
)

// SignatureCheck matches an ordered list of needles that must appear at
// non-decreasing offsets: part i must start at or after the end of part
// i-1. Its cursor, current, is monotone non-decreasing for the life of the
// check; once it reaches len(needles) the check is exhausted for the
// remainder of the scan (spec §4.6).
//
// SignatureCheck is single-shot by design (spec §9's resolution of the
// source's stateful-check-reuse ambiguity): build a fresh one per scan.
type SignatureCheck struct {
	needles     [][]byte
	current     int
	lastMatched int
	nextFrom    uint64 // absolute end of the last part found; the next part may not start before it
}

// NewSignatureCheck constructs a SignatureCheck over needles, in order.
// needles must be non-empty.
func NewSignatureCheck(needles [][]byte) (*SignatureCheck, error) {
	if len(needles) == 0 {
		return nil, rekallerr.ErrNoNeedles
	}
	cp := make([][]byte, len(needles))
	copy(cp, needles)
	return &SignatureCheck{needles: cp}, nil
}

// Exhausted reports whether every part of the signature has already been
// found.
func (c *SignatureCheck) Exhausted() bool {
	return c.current >= len(c.needles)
}

// MaxLen implements MaxLenHint, returning the longest single part — the
// unit a buffer's overlap must be able to hold for that part alone to be
// found without straddling two chunks.
func (c *SignatureCheck) MaxLen() int {
	max := 0
	for _, n := range c.needles {
		if len(n) > max {
			max = len(n)
		}
	}
	return max
}

// Check implements Check. A fresh part is only ever looked for at the
// current cursor, and never at an offset before the end of the previous
// part; a trailing occurrence of an earlier part after the signature is
// exhausted is never reported.
func (c *SignatureCheck) Check(buf *addrspace.BufferView, absOff uint64) ([]byte, bool) {
	if c.Exhausted() {
		return nil, false
	}
	if c.current > 0 && absOff < c.nextFrom {
		return nil, false
	}

	at := buf.BufferOffset(absOff)
	next := c.needles[c.current]
	if buf.StartsWith(next, at) {
		c.lastMatched = c.current
		c.current++
		c.nextFrom = absOff + conv.IntToUint64(len(next))
		return next, true
	}
	return nil, false
}

// MatchedIndex implements IndexedCheck, reporting which part of the
// signature was found by the most recent successful Check call.
func (c *SignatureCheck) MatchedIndex() int {
	return c.lastMatched
}

// Skip implements Check. The search for the next part starts past the end
// of the previous part (the `correction`), so an overlapping occurrence of
// part i-1 immediately followed by part i isn't mistaken for part i
// starting one byte earlier than it does (spec §4.6, scenario 4).
func (c *SignatureCheck) Skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	if c.Exhausted() {
		return buf.End() - absOff
	}

	at := buf.BufferOffset(absOff)
	next := c.needles[c.current]

	correction := 0
	if c.current > 0 {
		correction = len(c.needles[c.current-1])
	}

	idx := buf.Find(next, at+correction)
	if idx < 0 {
		return buf.End() - absOff
	}
	return conv.IntToUint64(idx - at)
}
