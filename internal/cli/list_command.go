package cli

import (
	"context"
	"encoding/json"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app    *App
	opts   api.ViewOptions
	format string
}

// NewListCommand creates a new list command handler. An empty format uses the configured default.
func NewListCommand(app *App, opts api.ViewOptions, format string) *ListCommand {
	return &ListCommand{app: app, opts: opts, format: format}
}

// Execute prints the projected task list
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format := c.format
	if format == "" {
		format = c.app.config.Display.ListFormat
	}

	view, err := c.app.api.BuildView(c.opts)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	projection, err := c.app.api.Project(ctx, view)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	switch format {
	case config.ListFormatTable:
		c.app.println(c.app.renderer.Table(projection.Tasks))
	case config.ListFormatPlain:
		if len(projection.Tasks) == 0 {
			c.app.println("No tasks found")
			return nil
		}
		c.app.println(c.app.renderer.Plain(projection.Tasks))
	case config.ListFormatJSON:
		return writeJSON(c.app, domain.NewMapper().Task.ToDatabaseSlice(projection.Tasks))
	default:
		return errors.NewInvalidInputError("format", format, "must be table, plain or json")
	}
	return nil
}

func writeJSON(app *App, v interface{}) error {
	enc := json.NewEncoder(app.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, "failed to encode JSON")
	}
	return nil
}
