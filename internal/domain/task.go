package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID           int64
	Text         string
	Completed    bool
	Color        string
	Category     string
	Priority     string
	DueDate      string // empty when not set
	Notes        string // empty when not set
	CreatedAt    time.Time
	LastModified time.Time
}

// NewTaskInput carries the caller-supplied fields for a new task.
type NewTaskInput struct {
	Text     string
	Category string
	Priority string
	DueDate  string
	Notes    string
}

// NewTask builds a task from input, resolving category, priority and color defaults.
// The id and timestamps are assigned by the caller.
func NewTask(id int64, input NewTaskInput, now time.Time) Task {
	category := ResolveCategory(input.Category)
	return Task{
		ID:           id,
		Text:         input.Text,
		Completed:    false,
		Color:        ColorForCategory(category),
		Category:     category,
		Priority:     ResolvePriority(input.Priority),
		DueDate:      strings.TrimSpace(input.DueDate),
		Notes:        input.Notes,
		CreatedAt:    now,
		LastModified: now,
	}
}

// IsValid checks if the task has an id and non-blank text.
func (t Task) IsValid() bool {
	return t.ID != 0 && strings.TrimSpace(t.Text) != ""
}

// HasDueDate reports whether a due date was set.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// HasNotes reports whether notes were set.
func (t Task) HasNotes() bool {
	return t.Notes != ""
}

// DueTime parses the due date. Tasks without a parsable due date return the Unix epoch.
func (t Task) DueTime() time.Time {
	if due, ok := ParseDueDate(t.DueDate); ok {
		return due
	}
	return time.UnixMilli(0).UTC()
}

// Toggled returns a copy with completion flipped and LastModified set to now.
func (t Task) Toggled(now time.Time) Task {
	t.Completed = !t.Completed
	t.LastModified = now
	return t
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}

// DueDateLayout is the layout used for due dates entered through the CLI.
const DueDateLayout = "2006-01-02"

// ParseDueDate parses a due date in YYYY-MM-DD (UTC midnight) or RFC3339 form.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse(DueDateLayout, s); err == nil {
		return d.UTC(), true
	}
	if d, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// FormatDueDate renders a due date with layout. Date-only values are calendar
// dates and are not shifted into the local zone. Unparsable values come back unchanged.
func FormatDueDate(dueDate, layout string) string {
	due, ok := ParseDueDate(dueDate)
	if !ok {
		return dueDate
	}
	return due.Format(layout)
}
