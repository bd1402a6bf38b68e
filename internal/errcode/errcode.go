// Package errcode defines the process-wide error taxonomy.
//
// Every failure surfaced to the user carries a Kind, and each Kind maps
// to exactly one process exit code. Errors are created at the point a
// collaborator call fails and propagate unchanged to process termination;
// there is no retry or recovery at this layer.
package errcode

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Generic is an unclassified wrapped error.
	Generic Kind = iota
	// BusInit means the session bus connection could not be established.
	BusInit
	// Bus means a specific bus call failed after a connection was up.
	Bus
	// IO is a local process or file I/O failure.
	IO
	// Favorites is a failure from the favorites service client.
	Favorites
)

// String returns the label used when rendering the error to stderr.
func (k Kind) String() string {
	switch k {
	case BusInit:
		return "dbus-init"
	case Bus:
		return "dbus"
	case IO:
		return "io"
	case Favorites:
		return "favorites"
	default:
		return "generic"
	}
}

// Code returns the fixed process exit code for the kind.
func (k Kind) Code() int {
	switch k {
	case BusInit:
		return 8
	case Bus:
		return 2
	case IO:
		return 3
	case Favorites:
		return 5
	default:
		return 4
	}
}

// Error pairs a failure kind with its underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

// New wraps err with the given kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf wraps a formatted message with the given kind.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches other *Error values by kind, so that
// errors.Is(err, &Error{Kind: Bus}) works regardless of cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// CodeFor extracts the exit code for an arbitrary error. Errors that do
// not carry a Kind are treated as Generic.
func CodeFor(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Code()
	}
	return Generic.Code()
}
