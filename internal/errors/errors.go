package errors

import (
	"context"
	"errors"
	"fmt"
)

// NewValidationError wraps rejected task or view fields
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "VALIDATION_FAILED",
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError reports a missing storage entry
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q not found", resource, identifier),
	}
}

// NewTaskNotFoundError reports an id that is not in the collection
func NewTaskNotFoundError(id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    "TASK_NOT_FOUND",
		Message: fmt.Sprintf("no task with ID %d", id),
		TaskID:  id,
	}
}

// NewStorageError reports a failed read or write of task storage
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Code:    "STORAGE_ERROR",
		Message: "could not " + operation,
		Op:      operation,
		Cause:   cause,
	}
}

// NewInvalidInputError reports a malformed argument or flag. value may be empty.
func NewInvalidInputError(field string, value string, reason string) *AppError {
	message := fmt.Sprintf("invalid %s: %s", field, reason)
	if value != "" {
		message = fmt.Sprintf("invalid %s %q: %s", field, value, reason)
	}
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Code:    "INVALID_INPUT",
		Message: message,
		Field:   field,
	}
}

// NewTimeoutError reports a storage call that ran out of time
func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Code:    "STORAGE_TIMEOUT",
		Message: "timed out trying to " + operation,
		Op:      operation,
		Cause:   cause,
	}
}

// FromStorageError classifies a storage failure. Deadline overruns become timeout
// errors, everything else a storage error. AppErrors pass through unchanged.
func FromStorageError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(operation, err)
	}
	return NewStorageError(operation, err)
}

// WrapError wraps an existing error with a type and message
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    errorType.String(),
		Message: message,
		Cause:   err,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns the message shown on the command line
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch appErr.Type {
	case ErrorTypeStorage:
		return "Could not access task storage. Please try again."
	case ErrorTypeTimeout:
		return "Task storage did not respond in time. Please try again."
	}
	if appErr.Type.IsUserError() {
		return appErr.Message
	}
	return "An unexpected error occurred. Please try again."
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is a system failure worth a log line.
// Mistyped input is not.
func ShouldLogError(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.IsUserError()
	}
	return true
}

// ExitCode maps an error to a process exit status. User errors exit 2,
// system errors exit 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := AsAppError(err); ok && appErr.Type.IsUserError() {
		return 2
	}
	return 1
}
