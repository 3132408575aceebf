package validation

import (
	"strings"

	"task-tracker/internal/domain"
)

// ViewValidator validates view parameters coming from the CLI or the board.
type ViewValidator struct {
	validator *Validator
}

// NewViewValidator creates a new view validator
func NewViewValidator() *ViewValidator {
	return &ViewValidator{
		validator: NewValidator(),
	}
}

// ValidateViewState validates every enumerated field of a view. An empty
// category filter passes like All.
func (vv *ViewValidator) ValidateViewState(view domain.ViewState) error {
	validationError := NewValidationError()

	if !vv.isSortKey(view.SortBy) {
		validationError.AddUnknownSortKey(string(view.SortBy))
	}

	if view.SortDirection != domain.SortAsc && view.SortDirection != domain.SortDesc {
		validationError.AddBadDirection(string(view.SortDirection))
	}

	category := view.SelectedCategory
	if category != "" && category != domain.AllCategories && !domain.IsCategory(category) {
		validationError.AddUnknownCategory(category, true)
	}

	return validationError.Err()
}

// ParseSortKey maps user input to a sort key. Matching is case-insensitive and
// also accepts snake_case ("created_at", "due_date").
func (vv *ViewValidator) ParseSortKey(s string) (domain.SortKey, error) {
	normalized := strings.ToLower(strings.ReplaceAll(vv.validator.TrimAndValidateString(s), "_", ""))
	for _, key := range domain.SortKeys {
		if strings.ToLower(string(key)) == normalized {
			return key, nil
		}
	}
	validationError := NewValidationError()
	validationError.AddUnknownSortKey(s)
	return "", validationError
}

// ParseSortDirection maps user input to a sort direction.
func (vv *ViewValidator) ParseSortDirection(s string) (domain.SortDirection, error) {
	switch strings.ToLower(vv.validator.TrimAndValidateString(s)) {
	case "asc":
		return domain.SortAsc, nil
	case "desc":
		return domain.SortDesc, nil
	}
	validationError := NewValidationError()
	validationError.AddBadDirection(s)
	return "", validationError
}

func (vv *ViewValidator) isSortKey(key domain.SortKey) bool {
	for _, k := range domain.SortKeys {
		if k == key {
			return true
		}
	}
	return false
}
