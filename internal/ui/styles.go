// Package ui renders tasks, stats and details for the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/domain"
)

// Palette is the set of colours for one theme.
type Palette struct {
	Name       string
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	BarEmpty   lipgloss.Color
}

var (
	LightPalette = Palette{
		Name:       "light",
		Foreground: lipgloss.Color("235"),
		Muted:      lipgloss.Color("245"),
		Accent:     lipgloss.Color("63"),
		Border:     lipgloss.Color("250"),
		Success:    lipgloss.Color("28"),
		BarEmpty:   lipgloss.Color("252"),
	}

	DarkPalette = Palette{
		Name:       "dark",
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("242"),
		Accent:     lipgloss.Color("141"),
		Border:     lipgloss.Color("238"),
		Success:    lipgloss.Color("78"),
		BarEmpty:   lipgloss.Color("237"),
	}
)

// PaletteFor returns the dark palette for "dark" and the light palette otherwise.
func PaletteFor(theme string) Palette {
	if strings.EqualFold(theme, DarkPalette.Name) {
		return DarkPalette
	}
	return LightPalette
}

// badgeColors maps stored colour classes to terminal colours.
var badgeColors = map[string]lipgloss.Color{
	"bg-red-100":    lipgloss.Color("210"),
	"bg-blue-100":   lipgloss.Color("111"),
	"bg-green-100":  lipgloss.Color("114"),
	"bg-yellow-100": lipgloss.Color("222"),
	"bg-purple-100": lipgloss.Color("183"),
	"bg-pink-100":   lipgloss.Color("218"),
	"bg-indigo-100": lipgloss.Color("105"),
	"bg-teal-100":   lipgloss.Color("116"),
}

var priorityColors = map[string]lipgloss.Color{
	domain.PriorityHigh:   lipgloss.Color("196"),
	domain.PriorityMedium: lipgloss.Color("220"),
	domain.PriorityLow:    lipgloss.Color("33"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	doneStyle  = lipgloss.NewStyle().Strikethrough(true)
)

// BadgeColor returns the terminal colour for a stored colour class.
// Unknown classes get the first fallback colour.
func BadgeColor(colorClass string) lipgloss.Color {
	if c, ok := badgeColors[colorClass]; ok {
		return c
	}
	return badgeColors[domain.FallbackColors[0]]
}

// CategoryBadge renders a category name on its colour.
func CategoryBadge(category, colorClass string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(BadgeColor(colorClass)).
		Padding(0, 1).
		Render(category)
}

// PriorityStyle returns the style for a priority name.
func PriorityStyle(priority string) lipgloss.Style {
	if c, ok := priorityColors[priority]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}

// PriorityLabel renders the priority icon and name.
func PriorityLabel(priority string) string {
	icon := domain.PriorityIcon(priority)
	if icon == "" {
		return PriorityStyle(priority).Render(priority)
	}
	return PriorityStyle(priority).Render(icon + " " + priority)
}
