package scanner

import "github.com/tankbusta/rekall/rekallerr"

// DefaultBlockSize is the default chunk size a Scanner reads from the
// address space at once (spec's SCAN_BLOCKSIZE).
const DefaultBlockSize uint64 = 1 << 20 // 1 MiB

// DefaultOverlap is the default number of trailing bytes carried from one
// chunk into the next so that needles straddling a chunk boundary remain
// discoverable. It must be at least as large as the longest needle in use.
const DefaultOverlap uint64 = 1024

// Options controls how a Scanner walks an address space.
type Options struct {
	// BlockSize is the maximum number of fresh bytes read per chunk.
	BlockSize uint64

	// Overlap is the number of trailing bytes from one chunk carried
	// into the next chunk within the same address range. Must be >= the
	// longest needle any attached check searches for, or matches
	// straddling a chunk boundary will be missed.
	Overlap uint64
}

// DefaultOptions returns the package defaults: a 1 MiB block size and a
// 1024-byte overlap.
func DefaultOptions() Options {
	return Options{
		BlockSize: DefaultBlockSize,
		Overlap:   DefaultOverlap,
	}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.BlockSize == 0 {
		return &rekallerr.ConfigError{Field: "BlockSize", Message: "must be > 0"}
	}
	return nil
}
