package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
)

// ValidationErrorType names the rule a task or view field broke
type ValidationErrorType string

const (
	ErrorTypeMissingText     ValidationErrorType = "missing_text"
	ErrorTypeBadTaskID       ValidationErrorType = "bad_task_id"
	ErrorTypeUnknownCategory ValidationErrorType = "unknown_category"
	ErrorTypeUnknownPriority ValidationErrorType = "unknown_priority"
	ErrorTypeBadDueDate      ValidationErrorType = "bad_due_date"
	ErrorTypeUnknownSortKey  ValidationErrorType = "unknown_sort_key"
	ErrorTypeBadDirection    ValidationErrorType = "bad_sort_direction"
)

// Field names as they appear on the command line
const (
	FieldText      = "text"
	FieldID        = "id"
	FieldCategory  = "category"
	FieldPriority  = "priority"
	FieldDueDate   = "due"
	FieldSort      = "sort"
	FieldDirection = "direction"
)

// FieldError is one rejected field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Value   string
	Message string
}

// Error implements the error interface for FieldError
func (fe FieldError) Error() string {
	return fe.Message
}

// ValidationError collects every rejected field of one task or view
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}
	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// IsValidationError checks if err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// HasErrors returns true if any field was rejected
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Err returns ve when it holds errors and nil otherwise
func (ve *ValidationError) Err() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, value string, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddMissingText rejects a stored task without text
func (ve *ValidationError) AddMissingText() {
	ve.add(FieldText, ErrorTypeMissingText, "", "task text is required")
}

// AddBadTaskID rejects an id that is not a positive number
func (ve *ValidationError) AddBadTaskID(id int64) {
	ve.add(FieldID, ErrorTypeBadTaskID, fmt.Sprint(id), "task ID must be a positive number, got %d", id)
}

// AddUnknownCategory rejects a category. allowAll lists the All filter as a choice.
func (ve *ValidationError) AddUnknownCategory(value string, allowAll bool) {
	choices := domain.CategoryNames()
	if allowAll {
		choices = append([]string{domain.AllCategories}, choices...)
	}
	ve.add(FieldCategory, ErrorTypeUnknownCategory, value,
		"unknown category %q: choose one of %s", value, strings.Join(choices, ", "))
}

// AddUnknownPriority rejects a priority name
func (ve *ValidationError) AddUnknownPriority(value string) {
	ve.add(FieldPriority, ErrorTypeUnknownPriority, value,
		"unknown priority %q: choose one of %s", value, strings.Join(domain.PriorityNames(), ", "))
}

// AddBadDueDate rejects a due date that does not parse
func (ve *ValidationError) AddBadDueDate(value string) {
	ve.add(FieldDueDate, ErrorTypeBadDueDate, value, "invalid due date %q: use YYYY-MM-DD", value)
}

// AddUnknownSortKey rejects a sort key
func (ve *ValidationError) AddUnknownSortKey(value string) {
	keys := make([]string, len(domain.SortKeys))
	for i, key := range domain.SortKeys {
		keys[i] = string(key)
	}
	ve.add(FieldSort, ErrorTypeUnknownSortKey, value,
		"unknown sort key %q: choose one of %s", value, strings.Join(keys, ", "))
}

// AddBadDirection rejects a sort direction
func (ve *ValidationError) AddBadDirection(value string) {
	ve.add(FieldDirection, ErrorTypeBadDirection, value,
		"unknown sort direction %q: choose %s or %s", value, domain.SortAsc, domain.SortDesc)
}

// UserMessage returns the message shown on the command line
func (ve *ValidationError) UserMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}
	lines := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		lines[i] = "- " + fe.Message
	}
	return "Multiple validation errors occurred:\n" + strings.Join(lines, "\n")
}
