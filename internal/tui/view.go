package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/domain"
	"task-tracker/internal/ui"
)

const addHelpText = "tab next field · shift+tab previous · enter save · esc cancel"

const helpText = "a add · space toggle · d delete · x clear done · / search · c category · p priority · s sort · r reverse · h hide done · t theme · S share · q quit"

// View renders the splash or the board.
func (m Model) View() string {
	if m.splash {
		return m.splashView()
	}

	palette := m.renderer.Palette
	title := lipgloss.NewStyle().Bold(true).Foreground(palette.Accent).Render("Task Tracker")
	muted := lipgloss.NewStyle().Foreground(palette.Muted)

	sections := []string{title}
	if m.projection != nil {
		sections = append(sections, m.renderer.Stats(m.projection.Stats))
	}
	sections = append(sections, m.controlsView(), m.inputView(), m.listView())

	if m.err != nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(errorText(m.err)))
	}
	if m.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(palette.Success).Render(m.notice))
	}
	sections = append(sections, muted.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) splashView() string {
	palette := m.renderer.Palette
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(palette.Accent).Render("Task Tracker"),
		lipgloss.NewStyle().Foreground(palette.Muted).Render("Loading..."),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) controlsView() string {
	completed := "shown"
	if !m.view.ShowCompleted {
		completed = "hidden"
	}
	search := m.view.SearchQuery
	if search == "" {
		search = "-"
	}
	return fmt.Sprintf("Search: %s  Category: %s  Sort: %s %s  Completed: %s  New priority: %s",
		search, m.view.SelectedCategory, m.view.SortBy, m.view.SortDirection, completed, ui.PriorityLabel(m.addPriority))
}

func (m Model) inputView() string {
	switch m.mode {
	case modeAdd:
		muted := lipgloss.NewStyle().Foreground(m.renderer.Palette.Muted)
		return lipgloss.JoinVertical(lipgloss.Left,
			"Add:   "+m.addForm[addText].View(),
			"Due:   "+m.addForm[addDue].View(),
			"Notes: "+m.addForm[addNotes].View(),
			muted.Render(addHelpText),
		)
	case modeSearch:
		return "Search: " + m.search.View()
	}
	return ""
}

func (m Model) listView() string {
	tasks := m.visible()
	if len(tasks) == 0 {
		return lipgloss.NewStyle().Foreground(m.renderer.Palette.Muted).Render("No tasks found")
	}

	lines := make([]string, len(tasks))
	for i, task := range tasks {
		lines[i] = m.taskLine(task, i == m.cursor)
	}
	return strings.Join(lines, "\n")
}

func (m Model) taskLine(task domain.Task, selected bool) string {
	pointer := "  "
	if selected {
		pointer = lipgloss.NewStyle().Foreground(m.renderer.Palette.Accent).Render("> ")
	}
	check := "[ ]"
	text := task.Text
	if task.Completed {
		check = "[x]"
		text = lipgloss.NewStyle().Strikethrough(true).Foreground(m.renderer.Palette.Muted).Render(text)
	}

	parts := []string{pointer + check, text, ui.CategoryBadge(task.Category, task.Color), ui.PriorityLabel(task.Priority)}
	if task.HasDueDate() {
		parts = append(parts, "due "+domain.FormatDueDate(task.DueDate, m.renderer.DateLayout))
	}
	return strings.Join(parts, " ")
}
