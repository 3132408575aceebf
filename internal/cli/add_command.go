package cli

import (
	"context"
	"strings"

	"task-tracker/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app   *App
	input domain.NewTaskInput
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, input domain.NewTaskInput) *AddCommand {
	return &AddCommand{app: app, input: input}
}

// Execute adds a task whose text is the joined arguments
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	input := c.input
	input.Text = strings.Join(args, " ")

	task, err := c.app.api.AddTask(ctx, input)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}
	if task == nil {
		c.app.println("Nothing added: task text is empty")
		return nil
	}

	c.app.printf("Added task %d: %s\n", task.ID, task.Text)
	return nil
}
