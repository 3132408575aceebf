package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(nil)
	})
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TK_DEBUG", "")
	SetVerbose(false)
	assert.False(t, DebugEnabled(), "DebugEnabled() should be false when TK_DEBUG is empty")

	t.Setenv("TK_DEBUG", "1")
	assert.True(t, DebugEnabled(), "DebugEnabled() should be true when TK_DEBUG is set")

	t.Setenv("TK_DEBUG", "")
	SetVerbose(true)
	assert.True(t, DebugEnabled(), "DebugEnabled() should be true in verbose mode")
	SetVerbose(false)
}

func TestDebugf(t *testing.T) {
	t.Setenv("TK_DEBUG", "")
	buf := captureLogs(t)

	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	t.Setenv("TK_DEBUG", "1")
	Debugf("loaded %d tasks\n", 3)
	assert.Contains(t, buf.String(), "loaded 3 tasks")
}

func TestDebugln(t *testing.T) {
	t.Setenv("TK_DEBUG", "")
	buf := captureLogs(t)

	Debugln("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debugln("visible", "line")
	assert.Contains(t, buf.String(), "visible line")
}

func TestLogger_InfoAndWarn(t *testing.T) {
	t.Setenv("TK_DEBUG", "")
	buf := captureLogs(t)

	l := Logger()
	l.Debug().Msg("not shown")
	l.Warn().Str("key", "tasks").Msg("corrupt task data")

	assert.NotContains(t, buf.String(), "not shown")
	assert.Contains(t, buf.String(), "corrupt task data")
	assert.Contains(t, buf.String(), "key=tasks")
}
