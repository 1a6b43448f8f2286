// Package domainerrors provides coded errors for the transport boundary.
// Domain packages keep their own closed taxonomies (see internal/figi);
// handlers translate those into coded errors so HTTP status mapping and
// response envelopes stay uniform.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for clients. Codes are stable API; messages are
// not.
type Code string

const (
	// CodeBadRequest is for malformed requests (unreadable body, missing fields).
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput is for well-formed requests carrying values that fail
	// domain validation.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound is for unknown resources or routes.
	CodeNotFound Code = "not_found"
	// CodeInternal is for unexpected server-side failures. Descriptions are
	// never exposed to clients for this code.
	CodeInternal Code = "internal_error"
)

// DomainError carries a client-facing code and message, optionally wrapping
// the underlying cause.
type DomainError struct {
	Code    Code
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Wrap creates a coded error preserving its cause for errors.Is/As chains.
func Wrap(code Code, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode, matching call sites like
// dErrors.Is(err, dErrors.CodeBadRequest).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
