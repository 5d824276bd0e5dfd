package checks

import (
	"fmt"

	"github.com/tankbusta/rekall/rekallerr"
)

// unknownCheckErr wraps rekallerr.ErrUnknownCheck with the offending name so
// callers can both errors.Is it and read a useful message.
type unknownCheckErr struct {
	name string
}

func (e *unknownCheckErr) Error() string {
	return fmt.Sprintf("%v: %q", rekallerr.ErrUnknownCheck, e.name)
}

func (e *unknownCheckErr) Unwrap() error {
	return rekallerr.ErrUnknownCheck
}

func unknownCheckError(name string) error {
	return &unknownCheckErr{name: name}
}

// regexCompileErr wraps rekallerr.ErrInvalidRegex with the offending
// pattern and the underlying parser error.
type regexCompileErr struct {
	pattern string
	err     error
}

func (e *regexCompileErr) Error() string {
	return fmt.Sprintf("%v: %q: %v", rekallerr.ErrInvalidRegex, e.pattern, e.err)
}

func (e *regexCompileErr) Unwrap() error {
	return rekallerr.ErrInvalidRegex
}
