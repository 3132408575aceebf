package cli

import (
	"context"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute flips completion of the task named by args[0]
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, found, err := c.app.api.ToggleTask(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}
	if !found {
		c.app.printf("No task with ID %d\n", id)
		return nil
	}

	if task.Completed {
		c.app.printf("Completed task %d: %s\n", task.ID, task.Text)
	} else {
		c.app.printf("Reopened task %d: %s\n", task.ID, task.Text)
	}
	return nil
}
