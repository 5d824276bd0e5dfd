package checks

import (
	"github.com/coregx/coregex"

	"github.com/tankbusta/rekall/addrspace"
)

// defaultRegexMaxLen is the recovered Python source's RegexCheck.maxlen
// class attribute (original_source/rekall/scan.py): regex matches have no
// statically knowable length, so the source picks a conservative fixed
// bound for how much overlap a regex needs to not miss a match straddling
// a chunk boundary.
const defaultRegexMaxLen = 100

// RegexCheck tests a compiled regular expression anchored at the exact
// candidate offset — not a search. It is the slowest check in the
// framework (spec §4.4) and offers no skip optimization, so Scanner should
// place it last in a constraint list and let faster checks narrow the
// candidates first.
//
// Matching is delegated to coregex rather than the stdlib regexp package:
// coregex's literal-prefilter and DFA strategies make repeated anchored
// tests over freshly-read memory pages considerably cheaper than
// backtracking regexp/syntax would be at this call frequency.
type RegexCheck struct {
	re     *coregex.Regex
	maxLen int
}

// NewRegexCheck compiles pattern. Returns an error wrapping
// rekallerr.ErrInvalidRegex if compilation fails.
func NewRegexCheck(pattern string) (*RegexCheck, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, &regexCompileErr{pattern: pattern, err: err}
	}
	return &RegexCheck{re: re, maxLen: defaultRegexMaxLen}, nil
}

// MaxLen implements MaxLenHint, returning the recovered Python source's
// fixed maxlen rather than attempting to derive a bound from the pattern.
func (c *RegexCheck) MaxLen() int {
	return c.maxLen
}

// Check implements Check. coregex has no anchored-only entry point, so this
// searches from the candidate offset and accepts only a match that begins
// exactly there — equivalent in effect to Python re.match's anchoring, at
// the cost of coregex doing slightly more work internally than a true
// anchored primitive would. Per spec §3 ("for single-string/regex/pointer,
// only offset") a match never populates the returned needle.
func (c *RegexCheck) Check(buf *addrspace.BufferView, absOff uint64) ([]byte, bool) {
	at := buf.BufferOffset(absOff)
	loc := c.re.FindIndex(buf.Data[at:])
	if loc == nil || loc[0] != 0 {
		return nil, false
	}
	return nil, true
}

// Skip implements Check. Always 1: regex matching offers no cheap lower
// bound on how far ahead the next possible match could be.
func (c *RegexCheck) Skip(buf *addrspace.BufferView, absOff uint64) uint64 {
	return 1
}
