package cli

import (
	"context"

	"task-tracker/internal/errors"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app       *App
	completed bool
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App, completed bool) *ClearCommand {
	return &ClearCommand{app: app, completed: completed}
}

// Execute removes every completed task. The --completed flag is required as confirmation.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if !c.completed {
		return errors.NewInvalidInputError("completed", "", "pass --completed to remove all completed tasks")
	}

	removed, err := c.app.api.ClearCompleted(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("clear completed tasks", err)
	}

	c.app.printf("Cleared %d completed task(s)\n", removed)
	return nil
}
