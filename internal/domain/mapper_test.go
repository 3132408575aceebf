package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"task-tracker/internal/repository/sqlite"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)
	domainTask := Task{
		ID:           1718000000000,
		Text:         "Write report",
		Color:        "bg-blue-100",
		Category:     "Work",
		Priority:     "High",
		DueDate:      "2024-06-14",
		Notes:        "Q2 numbers",
		CreatedAt:    created,
		LastModified: created,
	}

	result := mapper.ToDatabase(domainTask)

	expected := sqlite.TaskRecord{
		ID:           1718000000000,
		Text:         "Write report",
		Color:        "bg-blue-100",
		Category:     "Work",
		Priority:     "High",
		DueDate:      "2024-06-14",
		Notes:        "Q2 numbers",
		CreatedAt:    "2024-06-10T06:13:20.000Z",
		LastModified: "2024-06-10T06:13:20.000Z",
	}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	record := sqlite.TaskRecord{
		ID:           1718000000000,
		Text:         "Write report",
		Completed:    true,
		Color:        "bg-blue-100",
		Category:     "Work",
		Priority:     "High",
		CreatedAt:    "2024-06-10T06:13:20.000Z",
		LastModified: "2024-06-11T06:13:20.500Z",
	}

	result := mapper.FromDatabase(record)

	assert.Equal(t, int64(1718000000000), result.ID)
	assert.True(t, result.Completed)
	assert.True(t, result.CreatedAt.Equal(time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)))
	assert.True(t, result.LastModified.Equal(time.Date(2024, 6, 11, 6, 13, 20, 500000000, time.UTC)))
	assert.False(t, result.HasDueDate())
	assert.False(t, result.HasNotes())
}

func TestTaskMapper_FromDatabase_Fallbacks(t *testing.T) {
	mapper := NewTaskMapper()

	result := mapper.FromDatabase(sqlite.TaskRecord{ID: 1718000000000, Text: "Old", CreatedAt: "garbage"})

	assert.True(t, result.CreatedAt.Equal(time.UnixMilli(1718000000000)))
	assert.True(t, result.LastModified.Equal(result.CreatedAt))
}

func TestTaskMapper_RoundTripKeepsOrder(t *testing.T) {
	mapper := NewTaskMapper()
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []Task{
		NewTask(3, NewTaskInput{Text: "c"}, now),
		NewTask(1, NewTaskInput{Text: "a"}, now),
		NewTask(2, NewTaskInput{Text: "b"}, now),
	}

	result := mapper.FromDatabaseSlice(mapper.ToDatabaseSlice(tasks))

	assert.Len(t, result, 3)
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, result[i].ID)
		assert.Equal(t, tasks[i].Text, result[i].Text)
		assert.True(t, tasks[i].CreatedAt.Equal(result[i].CreatedAt))
	}
}

func TestTaskMapper_EmptySlices(t *testing.T) {
	mapper := NewTaskMapper()

	assert.Empty(t, mapper.ToDatabaseSlice([]Task{}))
	assert.Empty(t, mapper.FromDatabaseSlice([]sqlite.TaskRecord{}))
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper)
	assert.NotNil(t, mapper.Task)
}
