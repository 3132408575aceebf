package cli

import (
	stderrors "errors"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// userError carries the message shown to the user and keeps the cause for exit codes
type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string {
	return e.message
}

func (e *userError) Unwrap() error {
	return e.cause
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logger := logging.Logger()
		logger.Error().Err(err).Str("operation", operation).Msg("command failed")
	}

	// Field-level validation errors carry their own message
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &userError{fmt.Sprintf("failed to %s: %s", operation, validationErr.UserMessage()), err}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &userError{fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)), err}
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context.
// Errors already passed through Handle are returned unchanged.
func (eh *ErrorHandler) HandleSimple(err error) error {
	var handled *userError
	if stderrors.As(err, &handled) {
		return err
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &userError{validationErr.UserMessage(), err}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &userError{errors.GetUserMessage(err), err}
	}

	// Fallback for unknown errors
	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if task storage could not be read or written
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// ExitCode maps err to the process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return 2
	}
	return errors.ExitCode(err)
}