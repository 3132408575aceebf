package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
)

// Export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app    *App
	format string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, format string) *ExportCommand {
	return &ExportCommand{app: app, format: format}
}

// Execute writes every task, in insertion order, in the chosen format
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	records := domain.NewMapper().Task.ToDatabaseSlice(c.app.api.ListTasks(ctx))

	switch c.format {
	case ExportFormatCSV:
		return c.outputCSV(records)
	case ExportFormatJSON:
		return writeJSON(c.app, records)
	case ExportFormatYAML:
		return c.outputYAML(records)
	default:
		return errors.NewInvalidInputError("format", c.format, "must be csv, json or yaml")
	}
}

func (c *ExportCommand) outputCSV(records []sqlite.TaskRecord) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Text", "Completed", "Category", "Priority", "Due Date", "Notes", "Created At", "Last Modified"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Text,
			strconv.FormatBool(record.Completed),
			record.Category,
			record.Priority,
			record.DueDate,
			record.Notes,
			record.CreatedAt,
			record.LastModified,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (c *ExportCommand) outputYAML(records []sqlite.TaskRecord) error {
	enc := yaml.NewEncoder(c.app.out)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}
