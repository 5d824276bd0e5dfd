// Package checks implements the constraint types a Scanner evaluates at
// each candidate offset: fixed strings, regexes, Aho-Corasick multi-string
// sets, and ordered signatures.
//
// A Check is deliberately narrow: it knows how to test one offset and,
// optionally, how far it's safe to skip past offsets it can prove won't
// match. Composing several into an intersection, and turning skip floors
// into cursor advances, is the Scanner's job, not the Check's.
package checks

import "github.com/tankbusta/rekall/addrspace"

// Check is a single constraint a Scanner evaluates at a candidate offset.
//
// Check tests whether the constraint holds at absOff, returning the matched
// needle (nil if the check has no notion of "needle", such as RegexCheck)
// and whether it matched at all.
//
// Skip returns a lower bound on how many bytes the Scanner may advance past
// absOff while still being guaranteed not to miss a hit of this check alone.
// Implementations with nothing better to offer return 1 — the Scanner takes
// the max across every check's skip, so a check that can't skip never slows
// one that can.
type Check interface {
	Check(buf *addrspace.BufferView, absOff uint64) (needle []byte, ok bool)
	Skip(buf *addrspace.BufferView, absOff uint64) uint64
}

// MaxLenHint is implemented by checks that know an upper bound on the
// length of data they need to see in one buffer to recognize a match
// (spec's recovered StringCheck.maxlen / RegexCheck.maxlen attributes).
// Scanner uses it only to warn when the configured overlap is too small.
type MaxLenHint interface {
	MaxLen() int
}

// IndexedCheck is implemented by checks that match one of several distinct
// candidates and can identify which one last matched — MultiStringCheck's
// position in its needle list, SignatureCheck's part index. Scanner uses it
// to populate Match.NeedleIndex; a Check that only ever recognizes a single
// candidate (StringCheck, RegexCheck) has nothing meaningful to report here
// and simply doesn't implement it, per spec's "single-string/regex/pointer:
// only offset" rule.
type IndexedCheck interface {
	Check
	MatchedIndex() int
}

// Constructor builds a Check from a name and a free-form args map — the
// deferred, registry-by-name construction spec.md §9 calls for in place of
// the source's class-name-keyed ScannerCheck.classes lookup.
type Constructor func(args map[string]any) (Check, error)

var registry = map[string]Constructor{}

// Register adds a named check constructor to the registry. Intended to be
// called from package init() functions; registering the same name twice
// panics, since that can only be a build-time mistake.
func Register(name string, ctor Constructor) {
	if _, exists := registry[name]; exists {
		panic("rekall/checks: duplicate check registration: " + name)
	}
	registry[name] = ctor
}

// Build constructs the named check with the given args, looking it up in
// the registry populated by Register. This is the Go analogue of the
// source's build_constraints() classes[class_name](**args) dispatch.
func Build(name string, args map[string]any) (Check, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, unknownCheckError(name)
	}
	return ctor(args)
}

func init() {
	Register("String", func(args map[string]any) (Check, error) {
		needle, _ := args["needle"].([]byte)
		return NewStringCheck(needle)
	})
	Register("Regex", func(args map[string]any) (Check, error) {
		pattern, _ := args["pattern"].(string)
		return NewRegexCheck(pattern)
	})
	Register("MultiString", func(args map[string]any) (Check, error) {
		needles, _ := args["needles"].([][]byte)
		return NewMultiStringCheck(needles)
	})
	Register("Signature", func(args map[string]any) (Check, error) {
		needles, _ := args["needles"].([][]byte)
		return NewSignatureCheck(needles)
	})
}
