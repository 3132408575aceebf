package domain

import "strings"

// AllCategories is the filter sentinel that matches every category.
const AllCategories = "All"

// Category is one entry of the fixed category set.
type Category struct {
	Name  string
	Color string
}

// Categories lists the fixed category set. The first entry is the default.
var Categories = []Category{
	{Name: "Work", Color: "bg-blue-100"},
	{Name: "Personal", Color: "bg-green-100"},
	{Name: "Shopping", Color: "bg-yellow-100"},
	{Name: "Health", Color: "bg-red-100"},
	{Name: "Education", Color: "bg-purple-100"},
}

// FallbackColors is the palette used when a category has no color of its own.
var FallbackColors = []string{
	"bg-red-100",
	"bg-blue-100",
	"bg-green-100",
	"bg-yellow-100",
	"bg-purple-100",
	"bg-pink-100",
	"bg-indigo-100",
	"bg-teal-100",
}

// DefaultCategory returns the name of the first category.
func DefaultCategory() string {
	return Categories[0].Name
}

// FindCategory looks up a category by exact name.
func FindCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// IsCategory reports whether name is one of the fixed categories.
func IsCategory(name string) bool {
	_, ok := FindCategory(name)
	return ok
}

// ResolveCategory maps an empty or "All" selection to the default category.
func ResolveCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == AllCategories {
		return DefaultCategory()
	}
	return name
}

// ColorForCategory returns the category color, or the first fallback color.
func ColorForCategory(name string) string {
	if c, ok := FindCategory(name); ok {
		return c.Color
	}
	return FallbackColors[0]
}

// CategoryNames returns the category names in display order.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}

// Priority names.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Priority is one entry of the fixed priority set.
type Priority struct {
	Name   string
	Icon   string
	Weight int
}

// Priorities lists the priorities from highest to lowest.
var Priorities = []Priority{
	{Name: PriorityHigh, Icon: "⚡", Weight: 3},
	{Name: PriorityMedium, Icon: "⭐", Weight: 2},
	{Name: PriorityLow, Icon: "🔵", Weight: 1},
}

// DefaultPriority is used when no priority is given.
const DefaultPriority = PriorityMedium

// FindPriority looks up a priority by exact name.
func FindPriority(name string) (Priority, bool) {
	for _, p := range Priorities {
		if p.Name == name {
			return p, true
		}
	}
	return Priority{}, false
}

// IsPriority reports whether name is one of the fixed priorities.
func IsPriority(name string) bool {
	_, ok := FindPriority(name)
	return ok
}

// ResolvePriority maps an empty selection to the default priority.
func ResolvePriority(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPriority
	}
	return name
}

// PriorityWeight returns High=3, Medium=2, Low=1 and 0 for anything else.
func PriorityWeight(name string) int {
	if p, ok := FindPriority(name); ok {
		return p.Weight
	}
	return 0
}

// PriorityIcon returns the display icon for a priority.
func PriorityIcon(name string) string {
	if p, ok := FindPriority(name); ok {
		return p.Icon
	}
	return ""
}

// PriorityNames returns the priority names from highest to lowest.
func PriorityNames() []string {
	names := make([]string, len(Priorities))
	for i, p := range Priorities {
		names[i] = p.Name
	}
	return names
}
