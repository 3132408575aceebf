package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
	"task-tracker/internal/ui"
)

// App bundles what every command handler needs
type App struct {
	api          api.API
	config       *config.Config
	out          io.Writer
	errOut       io.Writer
	renderer     *ui.Renderer
	errorHandler *ErrorHandler
}

// CommandHandler is implemented by every command
type CommandHandler interface {
	Execute(ctx context.Context, args []string) error
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, out, errOut io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	renderer := ui.NewRenderer(cfg.Display.Theme, cfg.Display.DateLayout)
	renderer.Width = ui.TerminalWidth(out, ui.DefaultWidth)
	renderer.Color = ui.IsTerminal(out)

	return &App{
		api:          apiInstance,
		config:       cfg,
		out:          out,
		errOut:       errOut,
		renderer:     renderer,
		errorHandler: NewErrorHandler(),
	}
}

// APIFactory opens the task API for a configuration. The returned func releases its storage.
type APIFactory func(cfg *config.Config) (api.API, func() error, error)

// DefaultAPIFactory opens the SQLite database configured in cfg
func DefaultAPIFactory(cfg *config.Config) (api.API, func() error, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, errors.NewStorageError("open task storage", err)
	}
	return api.NewFromRepository(repo, containerOptions(cfg)), repo.Close, nil
}

// InMemoryAPIFactory opens a throwaway in-memory database
func InMemoryAPIFactory(cfg *config.Config) (api.API, func() error, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, nil, errors.NewStorageError("open task storage", err)
	}
	return api.NewFromRepository(repo, containerOptions(cfg)), repo.Close, nil
}

func containerOptions(cfg *config.Config) services.ContainerOptions {
	return services.ContainerOptions{
		StorageKey:   cfg.Storage.Key,
		DateLayout:   cfg.Display.DateLayout,
		ShareCommand: cfg.Share.Command,
		Logger:       logging.Logger(),
	}
}

// timeout returns a context bounded by the configured application timeout
func (a *App) timeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	d := a.config.Application.Timeout
	if d <= 0 {
		d = 60 * time.Second
	}
	return context.WithTimeout(parent, d)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// parseTaskID parses a task id argument
func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", s, "must be a positive numeric task ID")
	}
	return id, nil
}
