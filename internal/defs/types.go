// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
)

var (
	// ErrSectionNotFound is returned when a required :label: ... end; block is absent.
	ErrSectionNotFound = errors.New("section not found")
	// ErrBadExtension is returned for detail files not ending in .details.
	ErrBadExtension = errors.New("incorrect file name, must end with .details")
)

// LoadError describes a malformed line inside a details section.
type LoadError struct {
	Section string
	Line    int
	Reason  string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("details section %q line %d: %s", e.Section, e.Line, e.Reason)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
