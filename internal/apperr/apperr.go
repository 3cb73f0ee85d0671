// Package apperr defines the typed failures returned by the core services.
// Every operation either succeeds or fails with one of the kinds below;
// callers branch on the kind, never on error text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindNotFound means a referenced order, user or request does not exist.
	KindNotFound Kind = iota + 1
	// KindForbidden means the actor lacks the capability or is out of scope
	// for the target entity.
	KindForbidden
	// KindValidation means the input was malformed or violates a constraint.
	KindValidation
	// KindConflict means the operation clashes with existing state, such as
	// a duplicate signup email or a second pending verification.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a kinded operation failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return newf(KindForbidden, format, args...)
}

// Validation builds a KindValidation error.
func Validation(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

// KindOf returns the kind carried by err, or zero for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a KindNotFound failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsForbidden reports whether err is a KindForbidden failure.
func IsForbidden(err error) bool { return KindOf(err) == KindForbidden }

// IsValidation reports whether err is a KindValidation failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsConflict reports whether err is a KindConflict failure.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }
