package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/domain"
)

// DefaultWidth is used when the output width is unknown.
const DefaultWidth = 80

// Renderer turns tasks and stats into terminal text.
type Renderer struct {
	Palette    Palette
	DateLayout string
	Width      int
	// Color enables glamour's themed styles. Without it details render as plain ASCII.
	Color bool
}

// NewRenderer creates a renderer for a theme and due date layout.
func NewRenderer(theme, dateLayout string) *Renderer {
	return &Renderer{
		Palette:    PaletteFor(theme),
		DateLayout: dateLayout,
		Width:      DefaultWidth,
	}
}

// ProgressBar draws percent (clamped to 0..100) as a bar of width cells.
func ProgressBar(percent, width int) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Progress renders the bar in palette colours followed by the percentage.
func (r *Renderer) Progress(stats domain.Stats, width int) string {
	percent := stats.ProgressPercent()
	if width < 1 {
		width = 1
	}
	filled := percent * width / 100
	bar := lipgloss.NewStyle().Foreground(r.Palette.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(r.Palette.BarEmpty).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, percent)
}

// Stats renders the stats panel.
func (r *Renderer) Stats(stats domain.Stats) string {
	muted := lipgloss.NewStyle().Foreground(r.Palette.Muted)
	cells := []string{
		statCell("Total", stats.Total, muted),
		statCell("Completed", stats.Completed, muted),
		statCell("Pending", stats.Pending, muted),
		statCell("High Priority", stats.HighPriority, muted),
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		"",
		"Progress "+r.Progress(stats, 30),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(r.Palette.Border).
		Padding(0, 1).
		Render(body)
}

func statCell(label string, value int, muted lipgloss.Style) string {
	return lipgloss.NewStyle().PaddingRight(3).Render(
		lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(strconv.Itoa(value)), muted.Render(label)),
	)
}

// Table renders tasks as aligned columns.
func (r *Renderer) Table(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "No tasks found"
	}

	header := []string{"ID", "", "TASK", "CATEGORY", "PRIORITY", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		text := task.Text
		if task.Completed {
			text = doneStyle.Render(text)
		}
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			checkbox(task.Completed),
			text,
			CategoryBadge(task.Category, task.Color),
			PriorityLabel(task.Priority),
			domain.FormatDueDate(task.DueDate, r.DateLayout),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	headerStyle := titleStyle.Foreground(r.Palette.Accent)
	b.WriteString(strings.TrimRight(joinRow(header, widths, headerStyle), " "))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(joinRow(row, widths, lipgloss.NewStyle()), " "))
	}
	return b.String()
}

func joinRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		parts[i] = style.Render(cell) + strings.Repeat(" ", pad)
	}
	return strings.Join(parts, "  ")
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// Plain renders one unstyled line per task.
func (r *Renderer) Plain(tasks []domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		line := fmt.Sprintf("%s %d %s (%s, %s", checkbox(task.Completed), task.ID, task.Text, task.Category, task.Priority)
		if task.HasDueDate() {
			line += ", due " + domain.FormatDueDate(task.DueDate, r.DateLayout)
		}
		lines = append(lines, line+")")
	}
	return strings.Join(lines, "\n")
}

// DetailMarkdown builds the markdown document for a single task.
func (r *Renderer) DetailMarkdown(task domain.Task) string {
	status := "Pending"
	if task.Completed {
		status = "Completed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Text)
	fmt.Fprintf(&b, "- **ID:** %d\n", task.ID)
	fmt.Fprintf(&b, "- **Category:** %s\n", task.Category)
	fmt.Fprintf(&b, "- **Priority:** %s %s\n", domain.PriorityIcon(task.Priority), task.Priority)
	fmt.Fprintf(&b, "- **Status:** %s\n", status)
	if task.HasDueDate() {
		fmt.Fprintf(&b, "- **Due Date:** %s\n", domain.FormatDueDate(task.DueDate, r.DateLayout))
	}
	if !task.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Created:** %s\n", task.CreatedAt.Local().Format(r.DateLayout))
	}
	if task.HasNotes() {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", task.Notes)
	}
	return b.String()
}

// Detail renders a task through glamour. On a renderer failure the raw markdown is returned.
func (r *Renderer) Detail(task domain.Task) string {
	doc := r.DetailMarkdown(task)
	renderer := r.markdownRenderer()
	if renderer == nil {
		return doc
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return doc
	}
	return strings.Trim(rendered, "\n")
}

var (
	rendererMu sync.Mutex
	renderers  = map[string]*glamour.TermRenderer{}
)

func (r *Renderer) markdownRenderer() *glamour.TermRenderer {
	width := r.Width
	if width < 20 {
		width = DefaultWidth
	}
	style := "ascii"
	if r.Color {
		style = r.Palette.Name
	}
	cacheKey := fmt.Sprintf("%s/%d", style, width)

	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[cacheKey]; ok {
		return cached
	}

	var opt glamour.TermRendererOption
	if r.Color {
		opt = glamour.WithStandardStyle(style)
	} else {
		ascii := styles.ASCIIStyleConfig
		ascii.Item.BlockPrefix = "- "
		opt = glamour.WithStyles(ascii)
	}
	created, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	renderers[cacheKey] = created
	return created
}
