// Package errors provides structured error types for the hxr-attenuator
// application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (caller programming errors)
//   - EMPTY_*, TOO_MANY_*: Size-guard failures on solver input
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMode, "unrecognized mode %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidMode) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "loading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Solver input validation errors
	ErrCodeInvalidMode        Code = "INVALID_MODE"
	ErrCodeEmptyTransmissions Code = "EMPTY_TRANSMISSIONS"
	ErrCodeTooManyBlades      Code = "TOO_MANY_BLADES"
	ErrCodeInvalidInput       Code = "INVALID_INPUT"

	// Absorption model errors
	ErrCodeInvalidMaterial Code = "INVALID_MATERIAL"
	ErrCodeInvalidEnergy   Code = "INVALID_ENERGY"
	ErrCodeInvalidTable    Code = "INVALID_TABLE"

	// Stack configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsValidation reports whether err is any input-validation error, i.e. a
// caller programming error rather than an internal fault.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidMode, ErrCodeEmptyTransmissions, ErrCodeTooManyBlades,
		ErrCodeInvalidInput, ErrCodeInvalidMaterial, ErrCodeInvalidEnergy,
		ErrCodeInvalidConfig:
		return true
	}
	return false
}
