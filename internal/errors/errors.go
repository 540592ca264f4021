// Package errors provides error code definitions for the Shelfmark backend.
package errors

import "fmt"

// ErrorCode represents a unique error code that can be bridged to the UI.
type ErrorCode string

const (
	// General errors
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrInvalid    ErrorCode = "INVALID_INPUT"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// Storage errors
	ErrStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	ErrMalformedData      ErrorCode = "MALFORMED_DATA"

	// Book errors
	ErrBookNotFound ErrorCode = "BOOK_NOT_FOUND"

	// Image errors
	ErrImageInvalid  ErrorCode = "IMAGE_INVALID"
	ErrImageTooLarge ErrorCode = "IMAGE_TOO_LARGE"
)

// AppError represents an application error with code and message.
// Fields carries per-field messages for VALIDATION_ERROR so the caller
// can render each message next to its input.
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an error code.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a VALIDATION_ERROR carrying field-level messages.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: "one or more fields are invalid",
		Fields:  fields,
	}
}

// Is checks if an error is of a specific code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
