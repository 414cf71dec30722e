// Package wyerr provides the typed error taxonomy used throughout
// Wayscriber: configuration, protocol, I/O, input parsing, runtime
// invariant, and dispatch errors.
package wyerr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by the layer that produced it.
type Kind int

const (
	Configuration Kind = iota
	Protocol
	IO
	InputParsing
	RuntimeInvariant
	Dispatch
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Protocol:
		return "protocol"
	case IO:
		return "io"
	case InputParsing:
		return "input-parsing"
	case RuntimeInvariant:
		return "runtime-invariant"
	case Dispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind for classification by
// errors.As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a new Error of the given Kind with no wrapped cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches kind and msg to an existing error.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is (or wraps) a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
