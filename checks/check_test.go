package checks

import (
	"errors"
	"testing"

	"github.com/tankbusta/rekall/rekallerr"
)

func TestBuildUnknownCheck(t *testing.T) {
	_, err := Build("NoSuchCheck", nil)
	if err == nil {
		t.Fatal("expected an error for an unregistered check name")
	}
	if !errors.Is(err, rekallerr.ErrUnknownCheck) {
		t.Fatalf("error %v does not wrap ErrUnknownCheck", err)
	}
}

func TestBuildStringCheck(t *testing.T) {
	c, err := Build("String", map[string]any{"needle": []byte("hi")})
	if err != nil {
		t.Fatalf("Build(String): %v", err)
	}
	if _, ok := c.(*StringCheck); !ok {
		t.Fatalf("Build(String) returned %T, want *StringCheck", c)
	}
}

func TestBuildSignatureCheck(t *testing.T) {
	c, err := Build("Signature", map[string]any{"needles": [][]byte{[]byte("a"), []byte("b")}})
	if err != nil {
		t.Fatalf("Build(Signature): %v", err)
	}
	if _, ok := c.(*SignatureCheck); !ok {
		t.Fatalf("Build(Signature) returned %T, want *SignatureCheck", c)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register("String", func(map[string]any) (Check, error) { return nil, nil })
}
