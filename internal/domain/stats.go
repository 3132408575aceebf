package domain

import "math"

// Stats aggregates the whole collection, independent of any filter.
type Stats struct {
	Total        int     `json:"total" yaml:"total"`
	Completed    int     `json:"completed" yaml:"completed"`
	Pending      int     `json:"pending" yaml:"pending"`
	HighPriority int     `json:"high_priority" yaml:"high_priority"`
	Progress     float64 `json:"progress" yaml:"progress"`
}

// ProgressPercent rounds Progress for display.
func (s Stats) ProgressPercent() int {
	return int(math.Round(s.Progress))
}
