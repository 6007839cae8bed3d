package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeInvalidInput marks arguments that are malformed where a single
	// well-typed value is required, e.g. a non-integer year token.
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"

	// ErrTypeOutOfRange marks a year outside the valid window for the
	// requested dataset.
	ErrTypeOutOfRange ErrorType = "OUT_OF_RANGE"

	// ErrTypeUnavailableYear is a specialized out-of-range: the year falls
	// inside the window but no data was published for it.
	ErrTypeUnavailableYear ErrorType = "UNAVAILABLE_YEAR"

	ErrTypeParsing ErrorType = "PARSING"
	ErrTypeStorage ErrorType = "STORAGE"
	ErrTypeConfig  ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewInvalidInputError creates an invalid-input error
func NewInvalidInputError(message string) *AppError {
	return NewAppError(ErrTypeInvalidInput, message, nil)
}

// NewOutOfRangeError creates an out-of-range error for a year outside
// [minYear, maxYear]
func NewOutOfRangeError(year, minYear, maxYear int) *AppError {
	return NewAppError(ErrTypeOutOfRange,
		fmt.Sprintf("year %d is outside the available range %d-%d", year, minYear, maxYear), nil).
		WithContext("year", year).
		WithContext("min_year", minYear).
		WithContext("max_year", maxYear)
}

// NewUnavailableYearError creates an unavailable-year error. The message
// names the reason the year is missing so callers can surface it verbatim.
func NewUnavailableYearError(year int, reason string) *AppError {
	return NewAppError(ErrTypeUnavailableYear,
		fmt.Sprintf("no data was published for %d: %s", year, reason), nil).
		WithContext("year", year)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// typeOf extracts the AppError type from any error in the chain.
func typeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return "", false
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeInvalidInput
}

// IsOutOfRange reports whether err is an out-of-range error. Unavailable-year
// errors count: they are a specialization of out-of-range.
func IsOutOfRange(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeOutOfRange || t == ErrTypeUnavailableYear)
}

// IsUnavailableYear reports whether err is specifically an unavailable-year
// error.
func IsUnavailableYear(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeUnavailableYear
}
