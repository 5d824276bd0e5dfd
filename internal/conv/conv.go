// Package conv provides bounds-checked integer narrowing helpers for the
// scanning engine.
//
// Offsets inside a scan are tracked as absolute uint64 addresses, but buffer
// indices must be plain ints. These helpers make that narrowing an explicit,
// checked step instead of a silent truncation: a failure here means a buffer
// offset escaped the bounds the scanner promised to maintain, which is a
// programming error, not a recoverable condition.
package conv

import "math"

// Uint64ToInt safely converts a uint64 to an int.
// Panics if n exceeds math.MaxInt.
func Uint64ToInt(n uint64) int {
	if n > math.MaxInt {
		panic("rekall/internal/conv: uint64 value out of int range")
	}
	return int(n)
}

// IntToUint64 converts a non-negative int to a uint64.
// Panics if n < 0.
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("rekall/internal/conv: negative int cannot convert to uint64")
	}
	return uint64(n)
}
