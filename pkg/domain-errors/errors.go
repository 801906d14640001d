// Package domainerrors defines the error taxonomy shared by every service in
// motorvault. Errors carry a machine-readable code so transport layers can map
// them to HTTP statuses without string matching.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies a class of failure. Codes are stable API surface; messages
// are free text and may change.
type Code string

const (
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeTokenExpired       Code = "token_expired"
	CodeTokenInvalid       Code = "token_invalid"
	CodeUnauthenticated    Code = "unauthenticated"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeValidation         Code = "validation_error"
	CodeBadRequest         Code = "bad_request"
	CodeInternal           Code = "internal_error"
)

// Error is a value type so two errors built with the same code and message
// compare equal under errors.Is, which keeps test assertions simple.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

func (e Error) Unwrap() error { return e.wrapped }

// Is matches on code, and on message only when the target specifies one.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// New builds a domain error with the given code and message.
func New(code Code, message string) error {
	return Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause is kept
// for logging but never serialized to clients.
func Wrap(err error, code Code, message string) error {
	return Error{Code: code, Message: message, wrapped: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in the domain layer.
func CodeOf(err error) Code {
	var de Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the HTTP status used by the JSON error envelope.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidCredentials, CodeTokenExpired, CodeTokenInvalid, CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
