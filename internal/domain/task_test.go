package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    NewTaskInput
		expected Task
	}{
		{
			name:  "defaults category and priority",
			input: NewTaskInput{Text: "Call mom"},
			expected: Task{
				ID: 7, Text: "Call mom", Color: "bg-blue-100", Category: "Work", Priority: "Medium",
				CreatedAt: now, LastModified: now,
			},
		},
		{
			name:  "All category resolves to default",
			input: NewTaskInput{Text: "x", Category: "All", Priority: "Low"},
			expected: Task{
				ID: 7, Text: "x", Color: "bg-blue-100", Category: "Work", Priority: "Low",
				CreatedAt: now, LastModified: now,
			},
		},
		{
			name:  "keeps optional fields",
			input: NewTaskInput{Text: "Run", Category: "Health", Priority: "High", DueDate: " 2024-07-01 ", Notes: "5k"},
			expected: Task{
				ID: 7, Text: "Run", Color: "bg-red-100", Category: "Health", Priority: "High",
				DueDate: "2024-07-01", Notes: "5k", CreatedAt: now, LastModified: now,
			},
		},
		{
			name:  "text stored as entered",
			input: NewTaskInput{Text: "  padded  "},
			expected: Task{
				ID: 7, Text: "  padded  ", Color: "bg-blue-100", Category: "Work", Priority: "Medium",
				CreatedAt: now, LastModified: now,
			},
		},
		{
			name:  "unknown category falls back to first palette color",
			input: NewTaskInput{Text: "x", Category: "Garden"},
			expected: Task{
				ID: 7, Text: "x", Color: "bg-red-100", Category: "Garden", Priority: "Medium",
				CreatedAt: now, LastModified: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewTask(7, tt.input, now))
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"valid task", Task{ID: 1, Text: "Valid"}, true},
		{"blank text", Task{ID: 1, Text: "   "}, false},
		{"zero id", Task{ID: 0, Text: "Valid"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Toggled(t *testing.T) {
	created := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	task := NewTask(1, NewTaskInput{Text: "x"}, created)

	toggled := task.Toggled(later)
	assert.True(t, toggled.Completed)
	assert.Equal(t, later, toggled.LastModified)
	assert.Equal(t, created, toggled.CreatedAt)
	assert.False(t, task.Completed, "original is not mutated")

	assert.False(t, toggled.Toggled(later).Completed)
}

func TestTask_DueTime(t *testing.T) {
	tests := []struct {
		name     string
		due      string
		expected int64
	}{
		{"date only", "2024-07-01", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{"rfc3339", "2024-07-01T12:00:00Z", time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC).UnixMilli()},
		{"missing", "", 0},
		{"unparsable", "next week", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.due}
			assert.Equal(t, tt.expected, task.DueTime().UnixMilli())
		})
	}
}

func TestParseDueDate(t *testing.T) {
	_, ok := ParseDueDate("2024-02-30")
	assert.False(t, ok)

	d, ok := ParseDueDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, time.February, d.Month())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Buy milk", Task{Text: "Buy milk"}.String())
}
