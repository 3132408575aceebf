package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory APIFactory
	out     io.Writer
	errOut  io.Writer

	config  *config.Config
	app     *App
	closeFn func() error
}

// NewRootCommand creates the root cobra command with global flags.
// Storage is opened through factory once flags are parsed.
func NewRootCommand(factory APIFactory, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		factory: factory,
		out:     out,
		errOut:  errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A command-line task tracker",
		Long: `Task Tracker (tk) keeps a categorized, prioritized to-do list in a local database.

EXAMPLES:
  tk add Buy milk --category Shopping --priority Low
  tk add "Quarterly report" --priority High --due 2024-07-01 --notes "see *draft*"
  tk list --search milk --sort priority --direction asc
  tk toggle 1718000000000
  tk show 1718000000000
  tk share 1718000000000
  tk clear --completed
  tk export --format yaml > tasks.yaml
  tk ui

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults
  The config file is ~/.config/task-tracker/config.toml (overridden by TK_CONFIG or --config).

  TK_DB_DIR                Database directory (default: ~/.tk)
  TK_DB_FILENAME           Database filename (default: tk.db)
  TK_DB_QUERY_TIMEOUT      Query timeout (default: 10s)
  TK_DB_WRITE_TIMEOUT      Write timeout (default: 5s)
  TK_STORAGE_KEY           Storage key for the task list (default: tasks)
  TK_DISPLAY_DATE_LAYOUT   Due date layout (default: 01/02/2006)
  TK_DISPLAY_THEME         light or dark (default: light)
  TK_DISPLAY_LIST_FORMAT   table, plain or json (default: table)
  TK_UI_SPLASH_DELAY       Splash delay of the board (default: 2s)
  TK_SHARE_COMMAND         Share command, e.g. termux-share (default: clipboard)
  TK_APP_TIMEOUT           Application timeout (default: 60s)
  TK_APP_VERBOSE           Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.RunE == nil {
				return nil
			}
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
	}

	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)
	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// SetArgs sets the arguments, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the resolved configuration once a command has run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TK_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TK_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TK_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TK_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TK_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("date-layout", "", "Due date layout (overrides TK_DISPLAY_DATE_LAYOUT)")
	flags.String("theme", "", "Theme, light or dark (overrides TK_DISPLAY_THEME)")
	flags.String("list-format", "", "Default list format (overrides TK_DISPLAY_LIST_FORMAT)")

	// Board and share configuration
	flags.Duration("splash-delay", 0, "Board splash delay (overrides TK_UI_SPLASH_DELAY)")
	flags.String("share-command", "", "Share command (overrides TK_SHARE_COMMAND)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TK_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TK_APP_VERBOSE)")
}

// overridesFromFlags collects the flags the user actually set
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	dur := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}

	overrides.DBDir = str("db-dir")
	overrides.DBFilename = str("db-filename")
	overrides.DBQueryTimeout = dur("db-query-timeout")
	overrides.DBWriteTimeout = dur("db-write-timeout")
	overrides.DateLayout = str("date-layout")
	overrides.Theme = str("theme")
	overrides.ListFormat = str("list-format")
	overrides.SplashDelay = dur("splash-delay")
	overrides.ShareCommand = str("share-command")
	overrides.Timeout = dur("app-timeout")
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// setup resolves configuration, opens storage and loads the task list
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader = config.NewLoaderWithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.overridesFromFlags(cmd))
	if err != nil {
		return err
	}
	r.config = cfg

	logging.SetOutput(r.errOut)
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("database: %s", cfg.GetDatabasePath())

	apiInstance, closeFn, err := r.factory(cfg)
	if err != nil {
		return err
	}
	r.closeFn = closeFn

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Application.Timeout)
	defer cancel()
	if err := apiInstance.Load(ctx); err != nil {
		return NewErrorHandler().Handle("load tasks", err)
	}

	r.app = NewApp(apiInstance, cfg, r.out, r.errOut)
	return nil
}

func (r *RootCommand) teardown() error {
	if r.closeFn == nil {
		return nil
	}
	closeFn := r.closeFn
	r.closeFn = nil
	return closeFn()
}

// run wraps a handler with the application timeout
func (r *RootCommand) run(handler func(app *App) CommandHandler) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if r.app == nil {
			return fmt.Errorf("application not initialized")
		}
		ctx, cancel := r.app.timeout(cmd.Context())
		defer cancel()
		return handler(r.app).Execute(ctx, args)
	}
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var newTask domain.NewTaskInput
	addCmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task. The remaining arguments are joined into the task text.

Category defaults to Work and priority to Medium. Due dates use YYYY-MM-DD.`,
		Args: cobra.MinimumNArgs(1),
	}
	addCmd.Flags().StringVarP(&newTask.Category, "category", "c", "", "Category: Work, Personal, Shopping, Health or Education")
	addCmd.Flags().StringVarP(&newTask.Priority, "priority", "p", "", "Priority: High, Medium or Low")
	addCmd.Flags().StringVar(&newTask.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&newTask.Notes, "notes", "", "Notes, markdown allowed")
	addCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewAddCommand(app, newTask)
	})

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task between pending and completed",
		Args:  cobra.ExactArgs(1),
	}
	toggleCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewToggleCommand(app)
	})

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
	}
	deleteCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewDeleteCommand(app)
	})

	var clearCompleted bool
	clearCmd := &cobra.Command{
		Use:   "clear --completed",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
	}
	clearCmd.Flags().BoolVar(&clearCompleted, "completed", false, "Confirm removal of completed tasks")
	clearCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewClearCommand(app, clearCompleted)
	})

	var viewOpts api.ViewOptions
	var listFormat string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks filtered by search text, category and completion, then sorted.

Sort keys: createdAt (default), priority, dueDate. Directions: desc (default), asc.`,
		Args: cobra.NoArgs,
	}
	listCmd.Flags().StringVarP(&viewOpts.Search, "search", "s", "", "Case-insensitive text search")
	listCmd.Flags().StringVarP(&viewOpts.Category, "category", "c", "", "Category filter, or All")
	listCmd.Flags().BoolVar(&viewOpts.HideCompleted, "hide-completed", false, "Hide completed tasks")
	listCmd.Flags().StringVar(&viewOpts.SortBy, "sort", "", "Sort key: createdAt, priority or dueDate")
	listCmd.Flags().StringVar(&viewOpts.Direction, "direction", "", "Sort direction: asc or desc")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format: table, plain or json")
	listCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewListCommand(app, viewOpts, listFormat)
	})

	var statsJSON bool
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
	}
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print statistics as JSON")
	statsCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewStatsCommand(app, statsJSON)
	})

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task in detail",
		Args:  cobra.ExactArgs(1),
	}
	showCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewShowCommand(app)
	})

	var sharePrint bool
	shareCmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Share a task",
		Long: `Share a task's details through the configured share command.
Without one, the details are copied to the clipboard.`,
		Args: cobra.ExactArgs(1),
	}
	shareCmd.Flags().BoolVar(&sharePrint, "print", false, "Print the share text instead of sharing")
	shareCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewShareCommand(app, sharePrint)
	})

	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks",
		Args:  cobra.NoArgs,
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", ExportFormatCSV, "Export format: csv, json or yaml")
	exportCmd.RunE = r.run(func(app *App) CommandHandler {
		return NewExportCommand(app, exportFormat)
	})

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.app == nil {
				return fmt.Errorf("application not initialized")
			}
			// the board runs until the user quits, so no application timeout
			return NewUICommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		toggleCmd,
		deleteCmd,
		clearCmd,
		listCmd,
		statsCmd,
		showCmd,
		shareCmd,
		exportCmd,
		uiCmd,
	)
}
