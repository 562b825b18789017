// Package domainerrors provides coded errors for the service layer.
//
// Services return these so transport can translate them into HTTP statuses
// without inspecting error strings. Stores return sentinel errors
// (pkg/platform/sentinel) and services wrap them with a code here.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeValidation marks missing or malformed input. Raised before any
	// store call, so the caller can retry with corrected input.
	CodeValidation Code = "validation_error"

	// CodeNotFound marks a referenced entity that does not exist.
	CodeNotFound Code = "not_found"

	// CodeConflict marks a request that violates a cross-entity constraint,
	// such as deleting a bank account still referenced by registrations.
	CodeConflict Code = "conflict"

	// CodeStore marks a failed entity-store call. Store failures are not
	// retried within a request; the caller must resubmit.
	CodeStore Code = "store_error"

	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"

	// CodeForbidden marks an authenticated caller lacking permission.
	CodeForbidden Code = "forbidden"

	// CodeTimeout marks a cancelled or expired request context.
	CodeTimeout Code = "timeout"

	// CodeInternal marks an unexpected failure. Its message is never
	// exposed to callers.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error with an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with no cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err or any error in its chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readable alias for HasCode.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf returns the code carried by err, or CodeInternal when uncoded.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-facing message for err. Internal errors are
// redacted; coded errors expose their message, including the underlying
// store message for CodeStore (this system has no untrusted external
// callers, so store messages pass through unredacted).
func MessageOf(err error) string {
	var de *Error
	if !errors.As(err, &de) || de.Code == CodeInternal {
		return "an unexpected error occurred"
	}
	if de.Code == CodeStore && de.cause != nil {
		return de.Message + ": " + de.cause.Error()
	}
	return de.Message
}

// ToHTTPStatus maps a domain error code onto an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeStore, CodeConflict:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
