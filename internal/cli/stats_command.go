package cli

import (
	"context"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app      *App
	jsonMode bool
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App, jsonMode bool) *StatsCommand {
	return &StatsCommand{app: app, jsonMode: jsonMode}
}

// Execute prints statistics over the whole collection
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats := c.app.api.Stats(ctx)
	if c.jsonMode {
		return writeJSON(c.app, stats)
	}
	c.app.println(c.app.renderer.Stats(stats))
	return nil
}
