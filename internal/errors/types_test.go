package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestErrorType_IsUserError(t *testing.T) {
	assert.True(t, ErrorTypeValidation.IsUserError())
	assert.True(t, ErrorTypeNotFound.IsUserError())
	assert.True(t, ErrorTypeInvalidInput.IsUserError())
	assert.False(t, ErrorTypeStorage.IsUserError())
	assert.False(t, ErrorTypeTimeout.IsUserError())
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found: no task with ID 7", NewTaskNotFoundError(7).Error())
	assert.Equal(t,
		"storage: could not write tasks (caused by: disk full)",
		NewStorageError("write tasks", errors.New("disk full")).Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("add: %w", NewStorageError("write tasks", cause))

	assert.ErrorIs(t, err, cause)
}

func TestAppError_Is(t *testing.T) {
	err := fmt.Errorf("show: %w", NewTaskNotFoundError(7))

	assert.ErrorIs(t, err, NewTaskNotFoundError(99), "same type and code match regardless of id")
	assert.NotErrorIs(t, err, NewNotFoundError("storage item", "tasks"))
	assert.NotErrorIs(t, err, NewStorageError("write tasks", nil))
}
