package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	out     io.Writer = os.Stderr
	verbose bool
	logger  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.DateTime
	if _, ok := w.(*os.File); !ok {
		console.NoColor = true
	}

	return zerolog.New(console).
		Level(currentLevel()).
		With().
		Timestamp().
		Logger()
}

func currentLevel() zerolog.Level {
	if verbose || os.Getenv("TK_DEBUG") != "" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Logger returns the process-wide logger
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput redirects log output, mainly for tests. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	logger = newLogger(out)
}

// SetVerbose switches debug logging on regardless of TK_DEBUG
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	logger = newLogger(out)
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// DebugEnabled returns true if debug mode is enabled via TK_DEBUG or verbose mode
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose || os.Getenv("TK_DEBUG") != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		l := Logger().Level(zerolog.DebugLevel)
		l.Debug().Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		l := Logger().Level(zerolog.DebugLevel)
		l.Debug().Msg(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}
