package rekall

import (
	"github.com/tankbusta/rekall/addrspace"
	"github.com/tankbusta/rekall/checks"
	"github.com/tankbusta/rekall/scanner"
)

// Re-exported types and constructors for callers who only need the common
// path: one Scanner, a handful of Checks, a single address space. Anything
// not listed here (ScannerGroup, DiscontigScannerGroup, the checks registry)
// is still reachable through its own package.

type (
	Match        = scanner.Match
	Options      = scanner.Options
	Scanner      = scanner.Scanner
	AddressSpace = addrspace.AddressSpace
	AddressRange = addrspace.AddressRange
	Session      = addrspace.Session
	Profile      = addrspace.Profile
	BufferView   = addrspace.BufferView
	Check        = checks.Check
)

var (
	DefaultOptions       = scanner.DefaultOptions
	NewScanner           = scanner.NewScanner
	NewMultiStringScanner = scanner.NewMultiStringScanner
	NewPointerScanner    = scanner.NewPointerScanner
)

// NewStringCheck builds a Check that matches a single fixed byte string.
func NewStringCheck(needle []byte) (Check, error) { return checks.NewStringCheck(needle) }

// NewRegexCheck builds a Check that anchors pattern at the candidate offset.
func NewRegexCheck(pattern string) (Check, error) { return checks.NewRegexCheck(pattern) }

// NewMultiStringCheck builds a Check matching any of needles via Aho-Corasick.
func NewMultiStringCheck(needles [][]byte) (Check, error) { return checks.NewMultiStringCheck(needles) }

// NewSignatureCheck builds a Check matching an ordered sequence of parts.
func NewSignatureCheck(parts [][]byte) (Check, error) { return checks.NewSignatureCheck(parts) }
