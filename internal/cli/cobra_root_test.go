package cli

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/tui"
)

func TestRootCommand_HelpDoesNotOpenStorage(t *testing.T) {
	clearCLIEnv(t)
	opened := false
	factory := func(cfg *config.Config) (api.API, func() error, error) {
		opened = true
		return nil, nil, stderrors.New("should not be called")
	}

	for _, args := range [][]string{{}, {"--help"}, {"help", "list"}} {
		root := NewRootCommand(factory, &discard{}, &discard{})
		root.SetArgs(args)
		assert.NoError(t, root.Execute(), "%v", args)
	}
	assert.False(t, opened)
}

func TestRootCommand_FactoryError(t *testing.T) {
	clearCLIEnv(t)
	factory := func(cfg *config.Config) (api.API, func() error, error) {
		return nil, nil, stderrors.New("disk on fire")
	}

	root := NewRootCommand(factory, &discard{}, &discard{})
	root.SetArgs([]string{"list"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestRootCommand_ClosesStorage(t *testing.T) {
	c := setupTestCLI(t)
	closed := 0
	factory := func(cfg *config.Config) (api.API, func() error, error) {
		a, _, err := c.factory(cfg)
		return a, func() error { closed++; return nil }, err
	}

	root := NewRootCommand(factory, &discard{}, &discard{})
	root.SetArgs([]string{"stats"})
	require.NoError(t, root.Execute())
	assert.Equal(t, 1, closed)
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	c := setupTestCLI(t)
	c.mustRun("add", "Pay rent", "--due", "2024-07-01")

	out := c.mustRun("--date-layout", "2006-01-02", "list", "-f", "plain")
	assert.Equal(t, "[ ] "+firstID+" Pay rent (Work, Medium, due 2024-07-01)", out)

	c.mustRun("--theme", "dark", "--splash-delay", "500ms", "--app-timeout", "5s", "-v", "stats")
	cfg := c.root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, config.ThemeDark, cfg.Display.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SplashDelay)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	c := setupTestCLI(t)

	_, err := c.run("--theme", "sepia", "list")
	require.Error(t, err)
	var configErr *config.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	c := setupTestCLI(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display]
list_format = "plain"
date_layout = "02 Jan 2006"
`), 0o644))

	c.mustRun("add", "Pay rent", "--due", "2024-07-01")
	out := c.mustRun("--config", path, "list")
	assert.Equal(t, "[ ] "+firstID+" Pay rent (Work, Medium, due 01 Jul 2024)", out)

	t.Setenv("TK_DISPLAY_LIST_FORMAT", "json")
	out = c.mustRun("--config", path, "--list-format", "plain", "list")
	assert.Equal(t, "[ ] "+firstID+" Pay rent (Work, Medium, due 01 Jul 2024)", out)
}

func TestUICommand(t *testing.T) {
	c := setupTestCLI(t)
	a, _, err := c.factory(config.NewConfig())
	require.NoError(t, err)
	cfg := config.NewConfig()
	cfg.UI.SplashDelay = time.Second
	cfg.Display.Theme = config.ThemeDark
	app := NewApp(a, cfg, &discard{}, &discard{})

	t.Run("needs a terminal", func(t *testing.T) {
		cmd := NewUICommand(app)
		cmd.interactive = func() bool { return false }
		err := cmd.Execute(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, 2, NewErrorHandler().ExitCode(err))
	})

	t.Run("starts the board with configured options", func(t *testing.T) {
		var got tui.Options
		cmd := NewUICommand(app)
		cmd.interactive = func() bool { return true }
		cmd.run = func(ctx context.Context, opts tui.Options) error {
			got = opts
			return nil
		}
		require.NoError(t, cmd.Execute(context.Background(), nil))
		assert.Equal(t, tui.Options{SplashDelay: time.Second, Theme: "dark", DateLayout: "01/02/2006"}, got)
	})
}

func TestParseTaskID(t *testing.T) {
	id, err := parseTaskID(" 1718010000000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1718010000000), id)

	for _, bad := range []string{"", "abc", "0", "-4", "1.5"} {
		_, err := parseTaskID(bad)
		assert.Error(t, err, bad)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
