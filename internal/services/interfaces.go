package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// Projection is the filtered, sorted slice the views render plus stats over the full collection.
type Projection struct {
	Tasks []domain.Task `json:"tasks"`
	Stats domain.Stats  `json:"stats"`
}

// ShareMethod names the path a share took.
type ShareMethod string

const (
	ShareMethodPlatform  ShareMethod = "platform"
	ShareMethodClipboard ShareMethod = "clipboard"
)

// ShareResult reports what a share did. Notice is empty on the platform path.
type ShareResult struct {
	Method ShareMethod `json:"method"`
	Text   string      `json:"text"`
	Notice string      `json:"notice,omitempty"`
}

// TimeService supplies the clock and task ids
type TimeService interface {
	// Now returns the current time
	Now() time.Time
	// NextID returns a millisecond id for a task created at now, strictly greater than any id issued or observed
	NextID(now time.Time) int64
	// Observe records an existing id so later ids sort after it
	Observe(id int64)
	// FormatDueDate renders a stored due date with layout, or returns it unchanged if unparsable
	FormatDueDate(dueDate, layout string) string
}

// TaskStore owns the ordered task collection and its persistence
type TaskStore interface {
	// Load replaces the in-memory collection with the persisted one
	Load(ctx context.Context) error

	// Read operations
	Tasks() []domain.Task
	Get(id int64) (domain.Task, bool)

	// Mutations persist the whole collection before it becomes visible
	Add(ctx context.Context, input domain.NewTaskInput) (*domain.Task, error)
	Toggle(ctx context.Context, id int64) (*domain.Task, bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	ClearCompleted(ctx context.Context) (int, error)
}

// ViewProjector derives what the views show. All methods are pure.
type ViewProjector interface {
	Filter(tasks []domain.Task, view domain.ViewState) []domain.Task
	Sort(tasks []domain.Task, sortBy domain.SortKey, direction domain.SortDirection) []domain.Task
	Stats(tasks []domain.Task) domain.Stats
	Project(tasks []domain.Task, view domain.ViewState) Projection
}

// ShareService hands a task's text to the platform share target or the clipboard
type ShareService interface {
	FormatShareText(task domain.Task) string
	Share(ctx context.Context, task domain.Task) ShareResult
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService TimeService
	Store       TaskStore
	Projector   ViewProjector
	Share       ShareService
}
