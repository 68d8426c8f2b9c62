// Package apperr defines the error kinds every planner operation can fail with.
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates failures for callers and the transport layer.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
)

// Error is a failure tagged with its Kind. Message stays human readable;
// Field names the offending input field for validation failures.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports input that failed schema constraints.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotFound reports a reference to a record that does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a persistence failure.
func Store(op string, err error) *Error {
	return &Error{Kind: KindStore, Message: "failed to " + op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsValidation is Is(err, KindValidation).
func IsValidation(err error) bool { return Is(err, KindValidation) }

// IsNotFound is Is(err, KindNotFound).
func IsNotFound(err error) bool { return Is(err, KindNotFound) }

// FieldOf returns the offending field of a validation error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
