package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeValidation indicates a missing or empty request parameter
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates the hospital id is not in the registry
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeSourceNotFound indicates a registered hospital's data file does not exist
	ErrorTypeSourceNotFound ErrorType = "SOURCE_NOT_FOUND"

	// ErrorTypeParse indicates a data file exists but is not valid JSON
	ErrorTypeParse ErrorType = "PARSE"

	// ErrorTypeSourceUnavailable indicates a data file could not be read
	ErrorTypeSourceUnavailable ErrorType = "SOURCE_UNAVAILABLE"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from external service
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsSourceFailure reports whether the error means the hospital's data could not be produced.
func (e *AppError) IsSourceFailure() bool {
	switch e.Type {
	case ErrorTypeSourceNotFound, ErrorTypeParse, ErrorTypeSourceUnavailable:
		return true
	}
	return false
}

// As extracts an *AppError from anywhere in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal when err is not an AppError.
func TypeOf(err error) ErrorType {
	if appErr, ok := As(err); ok {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewSourceNotFoundError creates an error for a missing data file
func NewSourceNotFoundError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSourceNotFound,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates an error for a data file that is not valid JSON
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewSourceUnavailableError creates an error for a data file that could not be read
func NewSourceUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSourceUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}
