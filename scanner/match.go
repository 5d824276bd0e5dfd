package scanner

// Match is a single hit yielded by a scan: the absolute virtual offset
// where every constraint held, plus, for checks that have a notion of
// "the thing that matched" (multi-string, signature), the literal needle
// and its index in whatever list the caller built the check from.
type Match struct {
	// Offset is the absolute virtual address of the hit.
	Offset uint64

	// Needle is the matched bytes, or nil for checks with no needle
	// concept (a composed Scanner whose constraints are RegexCheck only,
	// for example).
	Needle []byte

	// NeedleIndex is the index of Needle within the needle list the
	// producing check was built from, or -1 if not applicable.
	NeedleIndex int
}
