package checks

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/internal/conv"
	"github.com/tankbusta/rekall/rekallerr"
)

// StringCheck matches a single fixed needle at the candidate offset.
// Stateless across buffers.
type StringCheck struct {
	needle []byte
}

// NewStringCheck constructs a StringCheck for needle. needle must not be
// empty.
func NewStringCheck(needle []byte) (*StringCheck, error) {
	if len(needle) == 0 {
		return nil, rekallerr.ErrNoNeedles
	}
	return &StringCheck{needle: needle}, nil
}

// Check implements Check. A StringCheck has exactly one candidate needle,
// so per spec §3 ("for single-string/regex/pointer, only offset") a match
// never populates the returned needle — there's nothing to identify beyond
// the offset itself.
func (c *StringCheck) Check(buf *addrspace.BufferView, absOff uint64) ([]byte, bool) {
	at := buf.BufferOffset(absOff)
	if buf.StartsWith(c.needle, at) {
		return nil, true
	}
	return nil, false
}

// Skip implements Check. It searches the remainder of the buffer for the
// needle starting one byte past the candidate offset — the +1 is what
// guarantees the Scanner's cursor always makes progress even when the
// needle reappears immediately (spec §4.3).
func (c *StringCheck) Skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	at := buf.BufferOffset(absOff)
	idx := buf.Find(c.needle, at+1)
	if idx < 0 {
		return buf.End() - absOff
	}
	return conv.IntToUint64(idx - at)
}

// MaxLen implements MaxLenHint.
func (c *StringCheck) MaxLen() int {
	return len(c.needle)
}
