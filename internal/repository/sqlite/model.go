package sqlite

import (
	"encoding/json"
	"time"
)

// StorageItem is one row of the local_storage table.
type StorageItem struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// TaskRecord is the persisted JSON shape of a task. Exports reuse it.
// Optional fields are omitted when empty.
type TaskRecord struct {
	ID           int64  `json:"id" yaml:"id"`
	Text         string `json:"text" yaml:"text"`
	Completed    bool   `json:"completed" yaml:"completed"`
	Color        string `json:"color" yaml:"color"`
	Category     string `json:"category" yaml:"category"`
	Priority     string `json:"priority" yaml:"priority"`
	DueDate      string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Notes        string `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt    string `json:"createdAt" yaml:"createdAt"`
	LastModified string `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
}

// EncodeTasks serializes the full task sequence in order.
func EncodeTasks(records []TaskRecord) (string, error) {
	if records == nil {
		records = []TaskRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeTasks parses a serialized task sequence.
func DecodeTasks(value string) ([]TaskRecord, error) {
	var records []TaskRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, err
	}
	return records, nil
}
