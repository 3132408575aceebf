package cli

import (
	"context"

	"task-tracker/internal/services"
)

// ShareCommand handles the share command
type ShareCommand struct {
	app       *App
	printOnly bool
}

// NewShareCommand creates a new share command handler
func NewShareCommand(app *App, printOnly bool) *ShareCommand {
	return &ShareCommand{app: app, printOnly: printOnly}
}

// Execute shares a task through the configured share command or the clipboard
func (c *ShareCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if c.printOnly {
		text, err := c.app.api.ShareText(ctx, id)
		if err != nil {
			return c.app.errorHandler.Handle("share task", err)
		}
		c.app.println(text)
		return nil
	}

	result, err := c.app.api.ShareTask(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("share task", err)
	}

	if result.Method == services.ShareMethodPlatform {
		c.app.printf("Shared task %d\n", id)
		return nil
	}
	c.app.println(result.Notice)
	return nil
}
