// Package rekall provides a memory scanning engine: a pipeline that
// consumes an address space — a paged, possibly sparse view over physical
// or virtual memory — and yields offsets where configurable constraints
// all hold.
//
// Constraints range from fixed byte strings and ordered multi-part
// signatures to regular expressions and pointer-address patterns. The
// engine handles the parts that make bulk memory scanning hard:
// coalescing discontiguous address ranges into a buffered stream, carrying
// overlap across chunk boundaries so matches spanning them are neither
// missed nor double-counted, and letting fast checks skip past regions a
// slower one would otherwise have to visit one byte at a time.
//
// The pieces:
//
//   - addrspace defines the external collaborators (AddressSpace, Session,
//     Profile) and BufferView, the chunk of bytes a Scanner hands to Checks.
//   - checks implements the constraint types: StringCheck, RegexCheck,
//     MultiStringCheck (Aho-Corasick), and SignatureCheck.
//   - scanner implements the kernel: Scanner, MultiStringScanner,
//     PointerScanner, ScannerGroup, and DiscontigScannerGroup.
//
// This package itself is a thin facade re-exporting the common entry
// points so straightforward scans don't need to import three packages.
//
// Example:
//
//	sc, err := rekall.NewScanner("strings", space, rekall.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc.AddCheck(needleCheck)
//	err = sc.Scan(0, 0, func(m rekall.Match) bool {
//	    fmt.Printf("hit at 0x%x\n", m.Offset)
//	    return true
//	})
package rekall
