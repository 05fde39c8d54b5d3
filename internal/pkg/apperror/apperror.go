// Package apperror holds the error taxonomy shared by the ledger, matcher and coupon services.
package apperror

import (
	"errors"
	"fmt"
)

// Kind groups errors by how a caller should react to them
type Kind string

const (
	KindNotFound         Kind = "notFound"
	KindInvalidState     Kind = "invalidState"
	KindCapacityExceeded Kind = "capacityExceeded"
	KindConflict         Kind = "conflict"
	KindValidation       Kind = "validationError"
	KindForbidden        Kind = "forbidden"
	KindUnauthorized     Kind = "unauthorized"
	KindInternal         Kind = "internal"
)

// Error is a classified domain error carrying a stable machine code
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// New creates a classified error
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code so wrapped copies of a sentinel still compare equal to it
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of e with err attached as its cause
func (e *Error) Wrap(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

// WithMessage returns a copy of e with a more specific message
func (e *Error) WithMessage(format string, args ...interface{}) *Error {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// Validation builds a validation error for malformed input
func Validation(format string, args ...interface{}) *Error {
	return ErrValidation.WithMessage(format, args...)
}

// As extracts the classified error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf returns the machine code of err, or "internal" for unclassified errors
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return string(KindInternal)
}

// IsConflict reports whether err stems from lock contention
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
