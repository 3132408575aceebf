package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/services"
)

// firstID is the id of the first task created with the test clock
const firstID = "1718010000000"

type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type testCLI struct {
	t         *testing.T
	repo      sqlite.Repository
	clipboard *memoryClipboard
	root      *RootCommand
	errOut    *bytes.Buffer
}

func clearCLIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TK_DB_FILENAME", "TK_DB_QUERY_TIMEOUT", "TK_DB_WRITE_TIMEOUT", "TK_DB_DIR_PERMISSIONS",
		"TK_STORAGE_KEY", "TK_DISPLAY_DATE_LAYOUT", "TK_DISPLAY_THEME", "TK_DISPLAY_LIST_FORMAT",
		"TK_UI_SPLASH_DELAY", "TK_SHARE_COMMAND", "TK_APP_TIMEOUT", "TK_APP_VERBOSE", "TK_DEBUG",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("TK_DB_DIR", t.TempDir())
	t.Setenv("TK_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
}

// setupTestCLI returns a harness whose runs share one in-memory database
func setupTestCLI(t *testing.T) *testCLI {
	t.Helper()
	clearCLIEnv(t)

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		logging.SetOutput(nil)
	})

	return &testCLI{t: t, repo: repo, clipboard: &memoryClipboard{}}
}

func (c *testCLI) factory(cfg *config.Config) (api.API, func() error, error) {
	clock := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	opts := containerOptions(cfg)
	opts.Clipboard = c.clipboard
	opts.TimeService = services.NewTimeServiceWithClock(func() time.Time { return clock })
	opts.Logger = logging.Nop()
	return api.NewFromRepository(c.repo, opts), func() error { return nil }, nil
}

// run executes one tk invocation and returns its stdout
func (c *testCLI) run(args ...string) (string, error) {
	c.t.Helper()
	out := &bytes.Buffer{}
	c.errOut = &bytes.Buffer{}
	c.root = NewRootCommand(c.factory, out, c.errOut)
	c.root.SetArgs(args)
	err := c.root.Execute()
	return strings.TrimRight(out.String(), "\n"), err
}

func (c *testCLI) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "tk %s", strings.Join(args, " "))
	return out
}
