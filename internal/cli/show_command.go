package cli

import (
	"context"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute renders one task in detail
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.app.api.GetTask(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("show task", err)
	}

	c.app.println(c.app.renderer.Detail(*task))
	return nil
}
