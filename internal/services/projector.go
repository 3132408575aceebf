package services

import (
	"sort"
	"strings"

	"task-tracker/internal/domain"
)

// projectorImpl implements the ViewProjector interface
type projectorImpl struct{}

// NewViewProjector creates a new ViewProjector instance
func NewViewProjector() ViewProjector {
	return &projectorImpl{}
}

// Filter keeps tasks matching the search text, the category and completion visibility
func (p *projectorImpl) Filter(tasks []domain.Task, view domain.ViewState) []domain.Task {
	query := strings.ToLower(view.SearchQuery)
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesTextFilter(task.Text, query) {
			continue
		}
		if view.SelectedCategory != domain.AllCategories && view.SelectedCategory != "" && task.Category != view.SelectedCategory {
			continue
		}
		if !view.ShowCompleted && task.Completed {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// matchesTextFilter checks if text contains the already lowercased query
func matchesTextFilter(text, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), lowerQuery)
}

// Sort returns a stably sorted copy. Ties keep their input order.
func (p *projectorImpl) Sort(tasks []domain.Task, sortBy domain.SortKey, direction domain.SortDirection) []domain.Task {
	sorted := append([]domain.Task(nil), tasks...)
	key := sortValue(sortBy)

	sort.SliceStable(sorted, func(i, j int) bool {
		diff := key(sorted[i]) - key(sorted[j])
		if direction == domain.SortDesc {
			diff = -diff
		}
		return diff < 0
	})
	return sorted
}

func sortValue(sortBy domain.SortKey) func(domain.Task) int64 {
	switch sortBy {
	case domain.SortByPriority:
		return func(t domain.Task) int64 { return int64(domain.PriorityWeight(t.Priority)) }
	case domain.SortByDueDate:
		return func(t domain.Task) int64 { return t.DueTime().UnixMilli() }
	default:
		return func(t domain.Task) int64 { return t.CreatedAt.UnixMilli() }
	}
}

// Stats aggregates the whole collection
func (p *projectorImpl) Stats(tasks []domain.Task) domain.Stats {
	stats := domain.Stats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		}
		if task.Priority == domain.PriorityHigh {
			stats.HighPriority++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.Progress = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// Project filters then sorts, with stats over the unfiltered input
func (p *projectorImpl) Project(tasks []domain.Task, view domain.ViewState) Projection {
	return Projection{
		Tasks: p.Sort(p.Filter(tasks, view), view.SortBy, view.SortDirection),
		Stats: p.Stats(tasks),
	}
}
