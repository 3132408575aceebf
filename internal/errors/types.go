package errors

import (
	"fmt"
)

// ErrorType classifies a failed task operation by who has to act on it
type ErrorType int

const (
	// ErrorTypeValidation marks task or view fields that broke a rule
	ErrorTypeValidation ErrorType = iota
	// ErrorTypeNotFound marks a lookup of an id that is not in the collection
	ErrorTypeNotFound
	// ErrorTypeStorage marks a failed read or write of the persisted collection
	ErrorTypeStorage
	// ErrorTypeInvalidInput marks malformed command-line input
	ErrorTypeInvalidInput
	// ErrorTypeTimeout marks a storage call that overran its deadline
	ErrorTypeTimeout
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeStorage:      "storage",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
}

// String returns the string representation of the error type
func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// IsUserError reports whether the user can fix the failure by changing what they typed
func (et ErrorType) IsUserError() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return true
	}
	return false
}

// AppError is a classified failure of a task operation
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	// Op is the store or command operation that failed, e.g. "write tasks"
	Op string
	// Field is the offending input for validation and invalid input errors
	Field string
	// TaskID is set when the failure concerns a single task
	TaskID int64
	Cause  error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
