package domain

// SortKey selects the field the task list is ordered by.
type SortKey string

const (
	SortByCreatedAt SortKey = "createdAt"
	SortByPriority  SortKey = "priority"
	SortByDueDate   SortKey = "dueDate"
)

// SortKeys lists the sort keys in cycling order.
var SortKeys = []SortKey{SortByCreatedAt, SortByPriority, SortByDueDate}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewState holds the view parameters the projector works from.
// It is passed explicitly; nothing in the core keeps it globally.
type ViewState struct {
	SearchQuery      string
	SelectedCategory string
	ShowCompleted    bool
	SortBy           SortKey
	SortDirection    SortDirection
	DarkMode         bool
}

// DefaultViewState returns the initial view: all categories, completed shown, newest first.
func DefaultViewState() ViewState {
	return ViewState{
		SelectedCategory: AllCategories,
		ShowCompleted:    true,
		SortBy:           SortByCreatedAt,
		SortDirection:    SortDesc,
	}
}

// Reversed flips the sort direction.
func (v ViewState) Reversed() ViewState {
	if v.SortDirection == SortAsc {
		v.SortDirection = SortDesc
	} else {
		v.SortDirection = SortAsc
	}
	return v
}

// NextSortKey advances to the next sort key.
func (v ViewState) NextSortKey() ViewState {
	for i, k := range SortKeys {
		if k == v.SortBy {
			v.SortBy = SortKeys[(i+1)%len(SortKeys)]
			return v
		}
	}
	v.SortBy = SortByCreatedAt
	return v
}

// NextCategory cycles All -> each category -> All.
func (v ViewState) NextCategory() ViewState {
	options := append([]string{AllCategories}, CategoryNames()...)
	for i, name := range options {
		if name == v.SelectedCategory {
			v.SelectedCategory = options[(i+1)%len(options)]
			return v
		}
	}
	v.SelectedCategory = AllCategories
	return v
}
