package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors config.toml. Durations are strings such as "2s".
type fileConfig struct {
	Database struct {
		Dir            string `toml:"dir"`
		Filename       string `toml:"filename"`
		QueryTimeout   string `toml:"query_timeout"`
		WriteTimeout   string `toml:"write_timeout"`
		DirPermissions string `toml:"dir_permissions"`
	} `toml:"database"`
	Storage struct {
		Key string `toml:"key"`
	} `toml:"storage"`
	Display struct {
		DateLayout string `toml:"date_layout"`
		Theme      string `toml:"theme"`
		ListFormat string `toml:"list_format"`
	} `toml:"display"`
	UI struct {
		SplashDelay string `toml:"splash_delay"`
	} `toml:"ui"`
	Share struct {
		Command string `toml:"command"`
	} `toml:"share"`
	Application struct {
		Timeout string `toml:"timeout"`
		Verbose bool   `toml:"verbose"`
	} `toml:"application"`
}

// DefaultConfigPath returns TK_CONFIG if set, else ~/.config/task-tracker/config.toml.
func DefaultConfigPath() string {
	if path := os.Getenv("TK_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "task-tracker", "config.toml")
}

// LoadFromFile applies the keys defined in a TOML file. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	meta, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &ConfigError{Field: undecoded[0].String(), Message: "unknown configuration key"}
	}

	if meta.IsDefined("database", "dir") {
		c.Database.Dir = expandHome(fc.Database.Dir)
	}
	if meta.IsDefined("database", "filename") {
		c.Database.Filename = fc.Database.Filename
	}
	if meta.IsDefined("database", "query_timeout") {
		if c.Database.QueryTimeout, err = parseDuration("database.query_timeout", fc.Database.QueryTimeout); err != nil {
			return err
		}
	}
	if meta.IsDefined("database", "write_timeout") {
		if c.Database.WriteTimeout, err = parseDuration("database.write_timeout", fc.Database.WriteTimeout); err != nil {
			return err
		}
	}
	if meta.IsDefined("database", "dir_permissions") {
		c.Database.DirPermissions = ParseUint32WithFallback(fc.Database.DirPermissions, 8, c.Database.DirPermissions)
	}
	if meta.IsDefined("storage", "key") {
		c.Storage.Key = fc.Storage.Key
	}
	if meta.IsDefined("display", "date_layout") {
		c.Display.DateLayout = fc.Display.DateLayout
	}
	if meta.IsDefined("display", "theme") {
		c.Display.Theme = fc.Display.Theme
	}
	if meta.IsDefined("display", "list_format") {
		c.Display.ListFormat = fc.Display.ListFormat
	}
	if meta.IsDefined("ui", "splash_delay") {
		if c.UI.SplashDelay, err = parseDuration("ui.splash_delay", fc.UI.SplashDelay); err != nil {
			return err
		}
	}
	if meta.IsDefined("share", "command") {
		c.Share.Command = fc.Share.Command
	}
	if meta.IsDefined("application", "timeout") {
		if c.Application.Timeout, err = parseDuration("application.timeout", fc.Application.Timeout); err != nil {
			return err
		}
	}
	if meta.IsDefined("application", "verbose") {
		c.Application.Verbose = fc.Application.Verbose
	}

	return nil
}
