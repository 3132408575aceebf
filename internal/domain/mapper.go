package domain

import (
	"time"

	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain tasks and persisted task records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a persisted record.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.TaskRecord {
	return sqlite.TaskRecord{
		ID:           domainTask.ID,
		Text:         domainTask.Text,
		Completed:    domainTask.Completed,
		Color:        domainTask.Color,
		Category:     domainTask.Category,
		Priority:     domainTask.Priority,
		DueDate:      domainTask.DueDate,
		Notes:        domainTask.Notes,
		CreatedAt:    sqlite.FormatTimestamp(domainTask.CreatedAt),
		LastModified: sqlite.FormatTimestamp(domainTask.LastModified),
	}
}

// FromDatabase converts a persisted record to a domain Task.
// An unreadable createdAt falls back to the id, which is the creation time in milliseconds.
// A missing lastModified falls back to createdAt.
func (m *TaskMapper) FromDatabase(record sqlite.TaskRecord) Task {
	createdAt, err := sqlite.ParseTimestamp(record.CreatedAt)
	if err != nil || createdAt.IsZero() {
		createdAt = time.UnixMilli(record.ID).UTC()
	}

	lastModified, err := sqlite.ParseTimestamp(record.LastModified)
	if err != nil || lastModified.IsZero() {
		lastModified = createdAt
	}

	return Task{
		ID:           record.ID,
		Text:         record.Text,
		Completed:    record.Completed,
		Color:        record.Color,
		Category:     record.Category,
		Priority:     record.Priority,
		DueDate:      record.DueDate,
		Notes:        record.Notes,
		CreatedAt:    createdAt,
		LastModified: lastModified,
	}
}

// ToDatabaseSlice converts a slice of domain Tasks to records, preserving order.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []Task) []sqlite.TaskRecord {
	records := make([]sqlite.TaskRecord, len(domainTasks))
	for i, task := range domainTasks {
		records[i] = m.ToDatabase(task)
	}
	return records
}

// FromDatabaseSlice converts a slice of records to domain Tasks, preserving order.
func (m *TaskMapper) FromDatabaseSlice(records []sqlite.TaskRecord) []Task {
	domainTasks := make([]Task, len(records))
	for i, record := range records {
		domainTasks[i] = m.FromDatabase(record)
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
