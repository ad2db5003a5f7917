// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes. Services return these; handlers translate them into
// uniform JSON error responses without leaking internals.
package apperror

import (
	"errors"
	"net/http"
)

// Type categorizes an application error.
type Type int

const (
	// Internal is an unexpected failure; details stay server-side.
	Internal Type = iota
	// Validation is a missing or malformed input field.
	Validation
	// Auth covers invalid credentials and missing/invalid/expired tokens.
	Auth
	// NotFound is a missing user or resource.
	NotFound
	// Conflict is a uniqueness violation, e.g. a duplicate email.
	Conflict
	// External is a failure of an upstream service such as the generation API.
	External
)

// Error is the application error type. Message is safe to show to clients;
// Err holds the underlying cause for logs only.
type Error struct {
	Type    Type
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.Type {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		// Internal and External both surface as a plain 500.
		return http.StatusInternalServerError
	}
}

// New creates an Error of the given type.
func New(t Type, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

func NewValidation(message string) *Error { return New(Validation, message, nil) }

func NewAuth(message string) *Error { return New(Auth, message, nil) }

func NewNotFound(message string) *Error { return New(NotFound, message, nil) }

func NewConflict(message string) *Error { return New(Conflict, message, nil) }

func NewInternal(err error) *Error { return New(Internal, "internal server error", err) }

func NewExternal(message string, err error) *Error { return New(External, message, err) }

// IsType reports whether err is (or wraps) an Error of type t.
func IsType(err error, t Type) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == t
}
