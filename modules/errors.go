package modules

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Kinds are constants so callers can match them
// with errors.Is.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	// ErrInvalidArgument reports a malformed or out-of-contract argument.
	ErrInvalidArgument Kind = "invalid argument"
	// ErrNotFound reports a missing substring, element or key.
	ErrNotFound Kind = "not found"
	// ErrOutOfRange reports a positional argument outside valid bounds.
	ErrOutOfRange Kind = "out of range"
	// ErrInternal reports a broken invariant inside the library.
	ErrInternal Kind = "internal error"
)

// Error is the error returned by every operation in this library.
type Error struct {
	Kind Kind
	// Op is the qualified operation name, e.g. "strings.partition".
	Op  string
	Msg string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return e.Op + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}
	return "", false
}
