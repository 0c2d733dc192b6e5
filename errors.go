package agtree

import (
	"fmt"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
)

// SyntaxError is raised by every parser in this package when it encounters a
// structurally invalid rule. It always carries a location range when the
// failure was detected while walking rule text produced by the scanner; it
// may be nil for errors raised against hand-built (not parsed) input.
type SyntaxError struct {
	Name    string
	Message string
	Loc     *location.Range
}

func (e *SyntaxError) Error() string {
	if e.Loc == nil {
		return fmt.Sprintf("%s: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("%s: %s (at offset %d)", e.Name, e.Message, e.Loc.Start.Offset)
}

// newSyntaxError builds a SyntaxError with no location, for errors raised
// before any location tracking is available (e.g. on hand-built nodes).
func newSyntaxError(name, message string) *SyntaxError {
	return &SyntaxError{Name: name, Message: message}
}

// newSyntaxErrorAt builds a SyntaxError anchored to a range.
func newSyntaxErrorAt(name, message string, rng location.Range) *SyntaxError {
	return &SyntaxError{Name: name, Message: message, Loc: &rng}
}

// CSSError wraps a delegated error surfaced by internal/cssast, translating
// its offset back to the enclosing rule's base location (see spec §7,
// "Delegated errors").
type CSSError struct {
	Err error
	Loc *location.Range
}

func (e *CSSError) Error() string {
	if e.Loc == nil {
		return fmt.Sprintf("css: %s", e.Err)
	}
	return fmt.Sprintf("css: %s (at offset %d)", e.Err, e.Loc.Start.Offset)
}

func (e *CSSError) Unwrap() error { return e.Err }
