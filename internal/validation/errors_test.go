package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_FieldMessages(t *testing.T) {
	tests := []struct {
		name      string
		add       func(ve *ValidationError)
		field     string
		errorType ValidationErrorType
		message   string
	}{
		{
			name:      "missing text",
			add:       func(ve *ValidationError) { ve.AddMissingText() },
			field:     FieldText,
			errorType: ErrorTypeMissingText,
			message:   "task text is required",
		},
		{
			name:      "bad task id",
			add:       func(ve *ValidationError) { ve.AddBadTaskID(-3) },
			field:     FieldID,
			errorType: ErrorTypeBadTaskID,
			message:   "task ID must be a positive number, got -3",
		},
		{
			name:      "unknown category for a task",
			add:       func(ve *ValidationError) { ve.AddUnknownCategory("Garden", false) },
			field:     FieldCategory,
			errorType: ErrorTypeUnknownCategory,
			message:   `unknown category "Garden": choose one of Work, Personal, Shopping, Health, Education`,
		},
		{
			name:      "unknown category for a filter",
			add:       func(ve *ValidationError) { ve.AddUnknownCategory("Garden", true) },
			field:     FieldCategory,
			errorType: ErrorTypeUnknownCategory,
			message:   `unknown category "Garden": choose one of All, Work, Personal, Shopping, Health, Education`,
		},
		{
			name:      "unknown priority",
			add:       func(ve *ValidationError) { ve.AddUnknownPriority("Urgent") },
			field:     FieldPriority,
			errorType: ErrorTypeUnknownPriority,
			message:   `unknown priority "Urgent": choose one of High, Medium, Low`,
		},
		{
			name:      "bad due date",
			add:       func(ve *ValidationError) { ve.AddBadDueDate("31/12/2024") },
			field:     FieldDueDate,
			errorType: ErrorTypeBadDueDate,
			message:   `invalid due date "31/12/2024": use YYYY-MM-DD`,
		},
		{
			name:      "unknown sort key",
			add:       func(ve *ValidationError) { ve.AddUnknownSortKey("size") },
			field:     FieldSort,
			errorType: ErrorTypeUnknownSortKey,
			message:   `unknown sort key "size": choose one of createdAt, priority, dueDate`,
		},
		{
			name:      "bad direction",
			add:       func(ve *ValidationError) { ve.AddBadDirection("up") },
			field:     FieldDirection,
			errorType: ErrorTypeBadDirection,
			message:   `unknown sort direction "up": choose asc or desc`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			require.Len(t, ve.Errors, 1)
			fe := ve.Errors[0]
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.errorType, fe.Type)
			assert.Equal(t, tt.message, fe.Message)
			assert.Equal(t, tt.message, ve.Error())
			assert.Equal(t, tt.message, ve.UserMessage())
		})
	}
}

func TestValidationError_Err(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())
	assert.NoError(t, ve.Err())
	assert.Equal(t, "validation error", ve.Error())
	assert.Equal(t, "Input validation failed", ve.UserMessage())

	ve.AddUnknownPriority("Urgent")
	assert.True(t, ve.HasErrors())
	assert.Same(t, ve, ve.Err())
}

func TestValidationError_MultipleErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddUnknownPriority("Urgent")
	ve.AddBadDueDate("soon")

	assert.Equal(t,
		`unknown priority "Urgent": choose one of High, Medium, Low; invalid due date "soon": use YYYY-MM-DD`,
		ve.Error())
	assert.Equal(t,
		"Multiple validation errors occurred:\n"+
			`- unknown priority "Urgent": choose one of High, Medium, Low`+"\n"+
			`- invalid due date "soon": use YYYY-MM-DD`,
		ve.UserMessage())
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddMissingText()

	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("load: %w", ve)))
	assert.False(t, IsValidationError(fmt.Errorf("plain")))
	assert.False(t, IsValidationError(nil))
}
