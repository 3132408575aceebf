// Package tui is the interactive task board.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/services"
	"task-tracker/internal/ui"
)

type inputMode int

const (
	modeBoard inputMode = iota
	modeAdd
	modeSearch
)

// Options configures the board.
type Options struct {
	SplashDelay time.Duration
	Theme       string
	DateLayout  string
}

// add form fields, in tab order
const (
	addText = iota
	addDue
	addNotes
	addFieldCount
)

// splashDoneMsg ends the splash screen.
type splashDoneMsg struct{}

// shareDoneMsg carries the outcome of a share started from the board.
type shareDoneMsg struct {
	notice string
	err    error
}

// Model is the bubbletea model for the board.
type Model struct {
	ctx      context.Context
	api      api.API
	renderer *ui.Renderer

	view        domain.ViewState
	projection  *services.Projection
	addPriority string
	cursor      int

	mode     inputMode
	search   textinput.Model
	addForm  [addFieldCount]textinput.Model
	addFocus int
	sharing  bool

	splash      bool
	splashDelay time.Duration

	notice string
	err    error
	width  int
	height int
}

// New creates the board. The collection must already be loaded.
func New(ctx context.Context, a api.API, opts Options) Model {
	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.CharLimit = 100

	view := domain.DefaultViewState()
	view.DarkMode = opts.Theme == ui.DarkPalette.Name

	m := Model{
		ctx:         ctx,
		api:         a,
		renderer:    ui.NewRenderer(opts.Theme, opts.DateLayout),
		view:        view,
		addPriority: domain.DefaultPriority,
		search:      search,
		addForm:     newAddForm(),
		splash:      opts.SplashDelay > 0,
		splashDelay: opts.SplashDelay,
	}
	m.refresh()
	return m
}

func newAddForm() [addFieldCount]textinput.Model {
	var form [addFieldCount]textinput.Model
	placeholders := [addFieldCount]string{
		addText:  "What needs to be done?",
		addDue:   "YYYY-MM-DD (optional)",
		addNotes: "Notes (optional)",
	}
	limits := [addFieldCount]int{addText: 500, addDue: 25, addNotes: 1000}
	for i := range form {
		form[i] = textinput.New()
		form[i].Placeholder = placeholders[i]
		form[i].CharLimit = limits[i]
	}
	return form
}

// Run starts the board on the terminal and blocks until it quits.
func Run(ctx context.Context, a api.API, opts Options) error {
	p := tea.NewProgram(New(ctx, a, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init schedules the end of the splash.
func (m Model) Init() tea.Cmd {
	if !m.splash {
		return nil
	}
	return tea.Tick(m.splashDelay, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

// Update handles one message. A key applies at most one store mutation and then re-projects.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case splashDoneMsg:
		m.splash = false
		return m, nil

	case shareDoneMsg:
		m.sharing = false
		m.notice = msg.notice
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.splash {
			return m, nil
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.err = nil

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.addForm = newAddForm()
		cmd := m.focusAddField(addText)
		return m, cmd
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.view.SearchQuery)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	case " ":
		if task, ok := m.selected(); ok {
			if _, _, err := m.api.ToggleTask(m.ctx, task.ID); err != nil {
				m.err = err
			}
		}
	case "d":
		if task, ok := m.selected(); ok {
			if _, err := m.api.DeleteTask(m.ctx, task.ID); err != nil {
				m.err = err
			}
		}
	case "x":
		if _, err := m.api.ClearCompleted(m.ctx); err != nil {
			m.err = err
		}
	case "c":
		m.view = m.view.NextCategory()
	case "p":
		m.addPriority = nextPriority(m.addPriority)
	case "s":
		m.view = m.view.NextSortKey()
	case "r":
		m.view = m.view.Reversed()
	case "h":
		m.view.ShowCompleted = !m.view.ShowCompleted
	case "t":
		m.view.DarkMode = !m.view.DarkMode
		theme := ui.LightPalette.Name
		if m.view.DarkMode {
			theme = ui.DarkPalette.Name
		}
		m.renderer.Palette = ui.PaletteFor(theme)
	case "S":
		task, ok := m.selected()
		if !ok || m.sharing {
			return m, nil
		}
		m.sharing = true
		m.notice = "Sharing..."
		return m, shareTask(m.ctx, m.api, task.ID)
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBoard
		m.err = nil
		m.focusAddField(-1)
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		cmd := m.focusAddField((m.addFocus + 1) % addFieldCount)
		return m, cmd
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := m.focusAddField((m.addFocus + addFieldCount - 1) % addFieldCount)
		return m, cmd
	case tea.KeyEnter:
		_, err := m.api.AddTask(m.ctx, domain.NewTaskInput{
			Text:     m.addForm[addText].Value(),
			Category: m.view.SelectedCategory,
			Priority: m.addPriority,
			DueDate:  strings.TrimSpace(m.addForm[addDue].Value()),
			Notes:    strings.TrimSpace(m.addForm[addNotes].Value()),
		})
		if err != nil {
			// keep the form so the field can be corrected
			m.err = err
			return m, nil
		}
		m.err = nil
		m.mode = modeBoard
		m.focusAddField(-1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.addForm[m.addFocus], cmd = m.addForm[m.addFocus].Update(msg)
	return m, cmd
}

// focusAddField focuses field i of the add form and blurs the rest. -1 blurs all.
func (m *Model) focusAddField(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range m.addForm {
		if j == i {
			cmd = m.addForm[j].Focus()
			continue
		}
		m.addForm[j].Blur()
	}
	if i >= 0 {
		m.addFocus = i
	}
	return cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.mode = modeBoard
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SearchQuery = m.search.Value()
	m.refresh()
	return m, cmd
}

// refresh re-projects the collection and keeps the cursor in range.
func (m *Model) refresh() {
	projection, err := m.api.Project(m.ctx, m.view)
	if err != nil {
		m.err = err
		return
	}
	m.projection = projection

	if m.cursor >= len(projection.Tasks) {
		m.cursor = len(projection.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) visible() []domain.Task {
	if m.projection == nil {
		return nil
	}
	return m.projection.Tasks
}

func (m Model) selected() (domain.Task, bool) {
	tasks := m.visible()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

// shareTask shares off the update loop so a slow share command does not freeze the board.
func shareTask(ctx context.Context, a api.API, id int64) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ShareTask(ctx, id)
		if err != nil {
			return shareDoneMsg{err: err}
		}
		notice := result.Notice
		if notice == "" {
			notice = "Task shared"
		}
		return shareDoneMsg{notice: notice}
	}
}

func nextPriority(current string) string {
	names := domain.PriorityNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return domain.DefaultPriority
}

func errorText(err error) string {
	return errors.GetUserMessage(err)
}
