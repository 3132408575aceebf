package cli

import (
	"context"

	"task-tracker/internal/errors"
	"task-tracker/internal/tui"
	"task-tracker/internal/ui"
)

// UICommand handles the ui command
type UICommand struct {
	app         *App
	interactive func() bool
	run         func(ctx context.Context, opts tui.Options) error
}

// NewUICommand creates a new ui command handler
func NewUICommand(app *App) *UICommand {
	return &UICommand{
		app:         app,
		interactive: ui.InteractiveTerminal,
		run: func(ctx context.Context, opts tui.Options) error {
			return tui.Run(ctx, app.api, opts)
		},
	}
}

// Execute starts the interactive board
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	if !c.interactive() {
		return errors.NewInvalidInputError("terminal", "", "the interactive board needs a terminal")
	}

	return c.run(ctx, tui.Options{
		SplashDelay: c.app.config.UI.SplashDelay,
		Theme:       c.app.config.Display.Theme,
		DateLayout:  c.app.config.Display.DateLayout,
	})
}
