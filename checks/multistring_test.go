package checks

import (
	"bytes"
	"testing"

	"github.com/tankbusta/rekall/addrspace"
)

func TestNewMultiStringCheckRejectsEmpty(t *testing.T) {
	if _, err := NewMultiStringCheck(nil); err == nil {
		t.Fatal("expected error for empty needle list")
	}
}

// TestMultiStringCheckOrdering mirrors spec scenario 2: needles {"foo",
// "bar"} over a buffer containing "bar" at 100 and "foo" at 200 must be
// reported in ascending offset order as the scanner's cursor advances.
func TestMultiStringCheckOrdering(t *testing.T) {
	c, err := NewMultiStringCheck([][]byte{[]byte("foo"), []byte("bar")})
	if err != nil {
		t.Fatalf("NewMultiStringCheck: %v", err)
	}

	data := make([]byte, 210)
	for i := range data {
		data[i] = '.'
	}
	copy(data[100:], "bar")
	copy(data[200:], "foo")

	var buf addrspace.BufferView
	buf.Assign(data, 0)

	needle, ok := c.Check(&buf, 100)
	if !ok || !bytes.Equal(needle, []byte("bar")) {
		t.Fatalf("Check(100) = (%q, %v), want (\"bar\", true)", needle, ok)
	}

	needle, ok = c.Check(&buf, 200)
	if !ok || !bytes.Equal(needle, []byte("foo")) {
		t.Fatalf("Check(200) = (%q, %v), want (\"foo\", true)", needle, ok)
	}
}

func TestMultiStringCheckSkip(t *testing.T) {
	c, err := NewMultiStringCheck([][]byte{[]byte("X")})
	if err != nil {
		t.Fatalf("NewMultiStringCheck: %v", err)
	}

	data := make([]byte, 20)
	data[10] = 'X'
	var buf addrspace.BufferView
	buf.Assign(data, 0)

	// Priming call at offset 0 builds the hit cache and reports no match.
	if _, ok := c.Check(&buf, 0); ok {
		t.Fatal("did not expect a match at offset 0")
	}
	if got, want := c.Skip(&buf, 0), uint64(10); got != want {
		t.Fatalf("Skip(0) = %d, want %d", got, want)
	}
}

func TestMultiStringCheckRebuildsOnNewBuffer(t *testing.T) {
	c, err := NewMultiStringCheck([][]byte{[]byte("X")})
	if err != nil {
		t.Fatalf("NewMultiStringCheck: %v", err)
	}

	var first addrspace.BufferView
	first.Assign([]byte("..X....."), 0)
	if _, ok := c.Check(&first, 2); !ok {
		t.Fatal("expected a hit in the first buffer")
	}

	var second addrspace.BufferView
	second.Assign([]byte("X......."), 1000)
	needle, ok := c.Check(&second, 1000)
	if !ok || !bytes.Equal(needle, []byte("X")) {
		t.Fatalf("Check on fresh buffer = (%q, %v), want (\"X\", true)", needle, ok)
	}
}

func TestMultiStringCheckMaxLen(t *testing.T) {
	c, _ := NewMultiStringCheck([][]byte{[]byte("a"), []byte("abc")})
	if got, want := c.MaxLen(), 3; got != want {
		t.Fatalf("MaxLen() = %d, want %d", got, want)
	}
}

func TestMultiStringCheckMatchedIndex(t *testing.T) {
	c, err := NewMultiStringCheck([][]byte{[]byte("foo"), []byte("bar")})
	if err != nil {
		t.Fatalf("NewMultiStringCheck: %v", err)
	}

	data := make([]byte, 210)
	for i := range data {
		data[i] = '.'
	}
	copy(data[100:], "bar")
	copy(data[200:], "foo")

	var buf addrspace.BufferView
	buf.Assign(data, 0)

	var ic IndexedCheck = c
	if _, ok := ic.Check(&buf, 100); !ok {
		t.Fatalf("expected a match at offset 100")
	}
	if got, want := ic.MatchedIndex(), 1; got != want {
		t.Fatalf("MatchedIndex() after matching \"bar\" = %d, want %d", got, want)
	}

	if _, ok := ic.Check(&buf, 200); !ok {
		t.Fatalf("expected a match at offset 200")
	}
	if got, want := ic.MatchedIndex(), 0; got != want {
		t.Fatalf("MatchedIndex() after matching \"foo\" = %d, want %d", got, want)
	}
}
