// Package errors provides structured error types for the asejson tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the codec, CLI, and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Field-path context for diagnosing bad sprite-sheet documents
//   - Error wrapping with cause preservation
//
// # Error Codes
//
// Codec errors describe exactly one way a document can be rejected:
//   - MALFORMED_SHAPE: the frames value is neither an array nor an object
//   - TYPE_MISMATCH: a field holds a JSON value of the wrong type
//   - MISSING_REQUIRED_FIELD: a non-optional field is absent
//   - INVALID_COLOR_*: a hex color string fails validation
//   - UNKNOWN_ENUM_VARIANT: a direction or blend mode string is unknown
//
// Tooling errors (FILE_NOT_FOUND, INVALID_INPUT, INTERNAL_ERROR) are used
// by the CLI and server, never by the codec itself.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTypeMismatch, "meta.size.w", "expected a number, got %q", v)
//	if errors.Is(err, errors.ErrCodeTypeMismatch) {
//	    // Handle schema error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Codec errors: the document does not match the vendor schema.
	ErrCodeMalformedShape Code = "MALFORMED_SHAPE"
	ErrCodeTypeMismatch   Code = "TYPE_MISMATCH"
	ErrCodeMissingField   Code = "MISSING_REQUIRED_FIELD"
	ErrCodeUnknownEnum    Code = "UNKNOWN_ENUM_VARIANT"

	// Color validation errors, one per way a hex string can be rejected.
	ErrCodeColorPrefix Code = "INVALID_COLOR_PREFIX"
	ErrCodeColorLength Code = "INVALID_COLOR_LENGTH"
	ErrCodeColorDigit  Code = "INVALID_COLOR_DIGIT"

	// Tooling errors used by the CLI and HTTP API.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, an optional document field
// path, and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Path    string // Dotted field path into the document, e.g. "meta.slices[0].color"
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code, field path, and formatted
// message. Pass an empty path for errors that are not tied to a document
// location.
func New(code Code, path, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Path:    path,
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

// GetPath extracts the document field path from an error, if available.
func GetPath(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Path
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (with path) without the code
// prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Path != "" {
			return fmt.Sprintf("%s: %s", e.Path, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
