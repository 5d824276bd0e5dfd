package addrspace

import (
	"github.com/coregx/coregex/simd"

	"github.com/tankbusta/rekall/internal/conv"
	"github.com/tankbusta/rekall/rekallerr"
)

// BufferView is a contiguous slice of bytes tagged with the absolute
// address of its first byte. It borrows its backing storage for the
// lifetime of a single scan chunk; a Scanner constructs one per chunk and
// discards it once the chunk has been fully walked.
//
// BufferOffset panics for an absolute offset outside [BaseOffset, End()),
// and Find panics for a start index outside [0, Len()]; either is a
// programming error. StartsWith instead reports false when needle does not
// fit at the given position.
type BufferView struct {
	Data       []byte
	BaseOffset uint64
}

// Assign points the view at data, based at baseOffset. It does not copy.
func (b *BufferView) Assign(data []byte, baseOffset uint64) {
	b.Data = data
	b.BaseOffset = baseOffset
}

// Len returns the number of bytes in the view.
func (b *BufferView) Len() int {
	return len(b.Data)
}

// End returns the exclusive absolute offset one past the view's last byte.
func (b *BufferView) End() uint64 {
	return b.BaseOffset + conv.IntToUint64(len(b.Data))
}

// BufferOffset converts an absolute offset into an index into Data.
// Panics if abs falls outside [BaseOffset, End()).
func (b *BufferView) BufferOffset(abs uint64) int {
	if abs < b.BaseOffset || abs >= b.End() {
		rekallerr.Panicf("offset 0x%x outside buffer view [0x%x, 0x%x)", abs, b.BaseOffset, b.End())
	}
	return conv.Uint64ToInt(abs - b.BaseOffset)
}

// StartsWith reports whether needle occurs at the given buffer-relative
// offset.
func (b *BufferView) StartsWith(needle []byte, at int) bool {
	if at < 0 || at+len(needle) > len(b.Data) {
		return false
	}
	for i, c := range needle {
		if b.Data[at+i] != c {
			return false
		}
	}
	return true
}

// Find returns the buffer-relative offset of the first occurrence of needle
// at or after `from`, or -1 if none exists. It uses the same SIMD-accelerated
// substring search the regex engine's prefilters use, since this is called
// once per candidate offset on every chunk of every scan.
func (b *BufferView) Find(needle []byte, from int) int {
	if from < 0 || from > len(b.Data) {
		rekallerr.Panicf("find: offset %d outside buffer view of length %d", from, len(b.Data))
	}
	rel := simd.Memmem(b.Data[from:], needle)
	if rel < 0 {
		return -1
	}
	return from + rel
}
