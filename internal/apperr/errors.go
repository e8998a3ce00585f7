// Package apperr defines the error kinds shared by the lingua packages.
// Callers match kinds with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a caller passed a value outside its domain,
	// e.g. a negative XP amount.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted indicates the learner has no energy left.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrNotFound indicates a lesson, question or path does not exist.
	ErrNotFound = errors.New("not found")
)

// Error carries the failing operation alongside its kind.
type Error struct {
	Op   string // e.g. "progress.AddXP"
	Kind error  // one of the Err* sentinels
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// New builds an *Error with a formatted message.
func New(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// InvalidArgument is shorthand for New(op, ErrInvalidArgument, ...).
func InvalidArgument(op, format string, args ...any) *Error {
	return New(op, ErrInvalidArgument, format, args...)
}

// NotFound is shorthand for New(op, ErrNotFound, ...).
func NotFound(op, format string, args ...any) *Error {
	return New(op, ErrNotFound, format, args...)
}

// ResourceExhausted is shorthand for New(op, ErrResourceExhausted, ...).
func ResourceExhausted(op, format string, args ...any) *Error {
	return New(op, ErrResourceExhausted, format, args...)
}
