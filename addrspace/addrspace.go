// Package addrspace defines the external collaborators a Scanner consumes —
// the address space being scanned, the session it reports progress to, and
// the profile PointerScanner uses to encode pointers — along with BufferView,
// the one concrete type the scanner owns: a chunk of bytes tagged with the
// absolute address of its first byte.
//
// AddressSpace, Session and Profile are interfaces only. Their
// implementations (per-OS virtual memory walkers, the forensic session,
// pointer-layout profiles) live outside this module; see spec §6.
package addrspace

// AddressRange is a single contiguous run the AddressSpace can read in one
// physical access. Ranges returned by GetAddressRanges are non-overlapping
// and ascending by VirtStart.
type AddressRange struct {
	VirtStart uint64
	PhysStart uint64
	Length    uint64
}

// End returns the exclusive upper bound of the range in virtual address
// space.
func (r AddressRange) End() uint64 {
	return r.VirtStart + r.Length
}

// AddressSpace enumerates address ranges and reads physical bytes. It is a
// read-only view from the scanner's perspective; a ScannerGroup shares one
// AddressSpace across all of its scanners without locking because the group
// itself is single-threaded.
type AddressSpace interface {
	// GetAddressRanges returns the ranges intersecting [start, end), in
	// ascending VirtStart order, clipped to that window.
	GetAddressRanges(start, end uint64) ([]AddressRange, error)

	// ReadPhys reads exactly length bytes starting at the given physical
	// offset, or returns an error. Implementations must not return a
	// short read without an error.
	ReadPhys(physOffset, length uint64) ([]byte, error)

	// Session returns the collaborator scans report progress to. May be
	// nil, in which case progress reporting is skipped.
	Session() Session
}

// Session receives best-effort, non-blocking progress reports. Failures
// reporting progress are discarded; there is no retry.
type Session interface {
	ReportProgress(format string, args ...any)
}

// Profile supplies the architecture-specific pointer layout PointerScanner
// needs to encode candidate addresses as byte needles.
type Profile interface {
	// AddressSize returns the width, in bytes, of a pointer under this
	// profile (4 or 8, typically).
	AddressSize() int

	// PutAddress writes addr into buf using the profile's byte order.
	// buf must be at least AddressSize() bytes long.
	PutAddress(buf []byte, addr uint64)
}
