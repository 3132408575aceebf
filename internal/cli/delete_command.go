package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes the task named by args[0]
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	removed, err := c.app.api.DeleteTask(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}
	if !removed {
		c.app.printf("No task with ID %d\n", id)
		return nil
	}

	c.app.printf("Deleted task %d\n", id)
	return nil
}
