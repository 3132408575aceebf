package validation

import (
	"task-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateNewTask checks the optional fields of a new task. Blank text is not an
// error here; the store ignores it.
func (tv *TaskValidator) ValidateNewTask(input domain.NewTaskInput) error {
	validationError := NewValidationError()

	tv.checkCategory(validationError, input.Category)
	tv.checkPriority(validationError, input.Priority)
	tv.checkDueDate(validationError, input.DueDate)

	return validationError.Err()
}

// ValidateCategory validates a category for a new task. Empty and "All" resolve to the default.
func (tv *TaskValidator) ValidateCategory(category string) error {
	validationError := NewValidationError()
	tv.checkCategory(validationError, category)
	return validationError.Err()
}

// ValidatePriority validates a priority. Empty resolves to the default.
func (tv *TaskValidator) ValidatePriority(priority string) error {
	validationError := NewValidationError()
	tv.checkPriority(validationError, priority)
	return validationError.Err()
}

// ValidateDueDate validates an optional due date.
func (tv *TaskValidator) ValidateDueDate(dueDate string) error {
	validationError := NewValidationError()
	tv.checkDueDate(validationError, dueDate)
	return validationError.Err()
}

// ValidateTask validates a stored domain.Task
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddBadTaskID(task.ID)
	}

	if !tv.validator.IsNonEmptyString(task.Text) {
		validationError.AddMissingText()
	}

	return validationError.Err()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	validationError := NewValidationError()
	if !tv.validator.IsValidTaskID(id) {
		validationError.AddBadTaskID(id)
	}
	return validationError.Err()
}

func (tv *TaskValidator) checkCategory(ve *ValidationError, category string) {
	category = tv.validator.TrimAndValidateString(category)
	if category == "" || category == domain.AllCategories {
		return
	}
	if !domain.IsCategory(category) {
		ve.AddUnknownCategory(category, false)
	}
}

func (tv *TaskValidator) checkPriority(ve *ValidationError, priority string) {
	priority = tv.validator.TrimAndValidateString(priority)
	if priority == "" {
		return
	}
	if !domain.IsPriority(priority) {
		ve.AddUnknownPriority(priority)
	}
}

func (tv *TaskValidator) checkDueDate(ve *ValidationError, dueDate string) {
	dueDate = tv.validator.TrimAndValidateString(dueDate)
	if dueDate == "" {
		return
	}
	if !tv.validator.IsValidDueDate(dueDate) {
		ve.AddBadDueDate(dueDate)
	}
}
