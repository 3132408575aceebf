package sqlite

import (
	"time"
)

// TimestampLayout matches JavaScript's Date.prototype.toISOString output.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimeForDB formats a time.Time value as RFC3339 string for the updated_at column
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatTimestamp formats a task timestamp as UTC ISO-8601 with milliseconds.
// The zero time formats as an empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a task timestamp. It accepts the millisecond layout and any RFC3339 value.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
