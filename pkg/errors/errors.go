// Package errors provides structured error types for lehmer.
//
// Every failure produced by the codec, the ordering store and the HTTP API
// carries a machine-readable [Code] so callers can branch on the category
// without matching message text:
//
//	code, err := lehmer.Encode([]int{0, 0})
//	if errors.Is(err, errors.ErrCodeInvalidPermutation) {
//	    // reject the input
//	}
//
// # Error Codes
//
//   - INVALID_*: input validation failures
//   - OUT_OF_RANGE, OVERFLOW: arithmetic limits
//   - NOT_FOUND: missing stored ordering
//   - *_UNAVAILABLE: backend failures (cache, store)
//   - INTERNAL_ERROR: unexpected failures
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Codec errors
	ErrCodeInvalidPermutation Code = "INVALID_PERMUTATION"
	ErrCodeInvalidArgument    Code = "INVALID_ARGUMENT"
	ErrCodeOutOfRange         Code = "OUT_OF_RANGE"
	ErrCodeOverflow           Code = "OVERFLOW"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidName   Code = "INVALID_NAME"

	// Resource errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeStoreUnavailable Code = "STORE_UNAVAILABLE"
	ErrCodeCacheUnavailable Code = "CACHE_UNAVAILABLE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsInputError reports whether err was caused by bad caller input rather
// than by a backend or an internal failure.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidPermutation, ErrCodeInvalidArgument, ErrCodeInvalidInput,
		ErrCodeInvalidFormat, ErrCodeInvalidName:
		return true
	}
	return false
}
