// Package errors provides structured error types for planview.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP service
//   - Machine-readable error codes for programmatic handling
//   - Naming the offending config field or section in every validation failure
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The geometry core reports four kinds of failure:
//   - CONFIG_MISSING_FIELD: a required key is absent from the config mapping
//   - INVALID_GEOMETRY: derived coordinates would violate a layout invariant
//   - UNKNOWN_SECTION_KIND: a garden section declares a kind other than rect or poly
//   - EMPTY_SECTION_LIST: there is nothing to bound
//
// The outer layers add INVALID_INPUT, INVALID_FORMAT, INVALID_PATH, FILE_NOT_FOUND,
// INTERNAL_ERROR and UNSUPPORTED.
//
// None of these are retried: given the same input they fail the same way.
//
// # Usage
//
//	err := errors.NewField(errors.ErrCodeMissingField, "room.width", "required field is missing")
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    field := errors.GetField(err) // "room.width"
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Geometry core errors
	ErrCodeMissingField       Code = "CONFIG_MISSING_FIELD"
	ErrCodeInvalidGeometry    Code = "INVALID_GEOMETRY"
	ErrCodeUnknownSectionKind Code = "UNKNOWN_SECTION_KIND"
	ErrCodeEmptySectionList   Code = "EMPTY_SECTION_LIST"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code, the offending field and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Dotted config path or section name (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
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

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewField creates a new Error attributed to a config field or section name.
func NewField(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
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

// GetField extracts the offending field from an error, if available.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the field and message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err is a deterministic input failure, as opposed to
// an internal or I/O failure.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingField, ErrCodeInvalidGeometry, ErrCodeUnknownSectionKind,
		ErrCodeEmptySectionList, ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return true
	}
	return false
}
