package domain

import (
	"errors"
	"fmt"
)

// Error kind sentinels. Match with errors.Is; the concrete detail text lives
// in the wrapping Error value.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("duplicate user")
	ErrValidation    = errors.New("validation error")
	// ErrDatabase is reserved for a future persistent backend; the in-memory
	// store never returns it.
	ErrDatabase = errors.New("database error")
)

// Error is a registry failure: a kind sentinel plus human-readable detail.
// The dispatcher renders Error() verbatim after the "ERROR: " prefix, so the
// detail strings are part of the wire protocol.
type Error struct {
	kind   error
	detail string
}

func (e *Error) Error() string { return e.detail }

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// NotFoundError reports a missing user, e.g. "Username 'bob' not found".
func NotFoundError(format string, args ...any) error {
	return &Error{kind: ErrUserNotFound, detail: fmt.Sprintf(format, args...)}
}

// DuplicateError reports a uniqueness violation on username or email.
func DuplicateError(format string, args ...any) error {
	return &Error{kind: ErrDuplicateUser, detail: fmt.Sprintf(format, args...)}
}

// ValidationError reports malformed input rejected before any state change.
func ValidationError(detail string) error {
	return &Error{kind: ErrValidation, detail: detail}
}
