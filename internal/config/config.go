package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Database    DatabaseConfig
	Storage     StorageConfig
	Display     DisplayConfig
	UI          UIConfig
	Share       ShareConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TK_DB_DIR"`
	Filename       string        `env:"TK_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TK_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TK_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TK_DB_DIR_PERMISSIONS"`
}

// StorageConfig holds the local storage key the task list lives under
type StorageConfig struct {
	Key string `env:"TK_STORAGE_KEY"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateLayout string `env:"TK_DISPLAY_DATE_LAYOUT"`
	Theme      string `env:"TK_DISPLAY_THEME"`
	ListFormat string `env:"TK_DISPLAY_LIST_FORMAT"`
}

// UIConfig holds interactive board configuration
type UIConfig struct {
	SplashDelay time.Duration `env:"TK_UI_SPLASH_DELAY"`
}

// ShareConfig holds platform share configuration
type ShareConfig struct {
	Command string `env:"TK_SHARE_COMMAND"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TK_APP_TIMEOUT"`
	Verbose bool          `env:"TK_APP_VERBOSE"`
}

// Display themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// List formats.
const (
	ListFormatTable = "table"
	ListFormatPlain = "plain"
	ListFormatJSON  = "json"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tk")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tk.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Storage: StorageConfig{
			Key: "tasks",
		},
		Display: DisplayConfig{
			DateLayout: "01/02/2006",
			Theme:      ThemeLight,
			ListFormat: ListFormatTable,
		},
		UI: UIConfig{
			SplashDelay: 2 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TK_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TK_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TK_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TK_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TK_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Storage configuration
	if key := os.Getenv("TK_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}

	// Display configuration
	if layout := os.Getenv("TK_DISPLAY_DATE_LAYOUT"); layout != "" {
		c.Display.DateLayout = layout
	}
	if theme := os.Getenv("TK_DISPLAY_THEME"); theme != "" {
		c.Display.Theme = theme
	}
	if format := os.Getenv("TK_DISPLAY_LIST_FORMAT"); format != "" {
		c.Display.ListFormat = format
	}

	// UI configuration
	if delay := os.Getenv("TK_UI_SPLASH_DELAY"); delay != "" {
		c.UI.SplashDelay = ParseDurationWithFallback(delay, c.UI.SplashDelay)
	}

	// Share configuration
	if command, ok := os.LookupEnv("TK_SHARE_COMMAND"); ok {
		c.Share.Command = command
	}

	// Application configuration
	if timeout := os.Getenv("TK_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}

	// Validate display configuration
	if c.Display.DateLayout == "" {
		return &ConfigError{Field: "display.date_layout", Message: "date layout cannot be empty"}
	}
	if c.Display.Theme != ThemeLight && c.Display.Theme != ThemeDark {
		return &ConfigError{Field: "display.theme", Message: "theme must be light or dark"}
	}
	switch c.Display.ListFormat {
	case ListFormatTable, ListFormatPlain, ListFormatJSON:
	default:
		return &ConfigError{Field: "display.list_format", Message: "list format must be table, plain or json"}
	}

	if c.UI.SplashDelay < 0 {
		return &ConfigError{Field: "ui.splash_delay", Message: "splash delay cannot be negative"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
