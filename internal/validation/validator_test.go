package validation

import (
	"testing"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator()

	if validator.IsValidTaskID(0) {
		t.Errorf("IsValidTaskID(0) should be false")
	}
	if validator.IsValidTaskID(-5) {
		t.Errorf("IsValidTaskID(-5) should be false")
	}
	if !validator.IsValidTaskID(1718000000000) {
		t.Errorf("IsValidTaskID(1718000000000) should be true")
	}
}

func TestValidator_IsValidDueDate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"2024-07-01", true},
		{"2024-07-01T09:00:00Z", true},
		{"07/01/2024", false},
		{"2024-13-01", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := validator.IsValidDueDate(tt.input); result != tt.expected {
				t.Errorf("IsValidDueDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

