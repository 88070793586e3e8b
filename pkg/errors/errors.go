// Package errors provides structured error types for hwgraph.
//
// Errors carry a machine-readable [Code] so that callers can tell a policy
// rejection (a normal, recoverable outcome of connecting two nodes) from an
// invalid operation (a builder bug that should abort the construction step).
//
// # Error Codes
//
// Policy rejections:
//   - REJECTED: the fan-in/fan-out policy of an endpoint refused an edge
//
// Invalid operations:
//   - IMMUTABLE_NODE: attempt to drive a literal
//   - INVALID_CAST: capability cast to the wrong node variant
//   - UNSUPPORTED_KIND: unknown node kind string
//   - STORAGE_KIND: literal accessor that does not match the stored value
//
// Container, file and CLI errors:
//   - INVALID_INPUT, INVALID_NAME, INVALID_FORMAT, INVALID_PATH
//   - NOT_FOUND, DUPLICATE
//
// # Usage
//
//	_, err := node.Connect(sink, src)
//	switch {
//	case errors.Is(err, errors.ErrCodeRejected):
//	    // sink already driven, pick another sink
//	case errors.IsInvalidOperation(err):
//	    return err
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Policy rejection
	ErrCodeRejected Code = "REJECTED"

	// Invalid operations
	ErrCodeImmutableNode   Code = "IMMUTABLE_NODE"
	ErrCodeInvalidCast     Code = "INVALID_CAST"
	ErrCodeUnsupportedKind Code = "UNSUPPORTED_KIND"
	ErrCodeStorageKind     Code = "STORAGE_KIND"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeNotFound  Code = "NOT_FOUND"
	ErrCodeDuplicate Code = "DUPLICATE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalidOperation reports whether err signals misuse of the graph API
// rather than a policy rejection or an input problem.
func IsInvalidOperation(err error) bool {
	switch GetCode(err) {
	case ErrCodeImmutableNode, ErrCodeInvalidCast, ErrCodeUnsupportedKind, ErrCodeStorageKind:
		return true
	}
	return false
}
