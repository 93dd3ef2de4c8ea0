package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger_PrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("range changed", "start", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[vlist] range changed")
	assert.Contains(t, out, "start=3")
}

func TestDefaultLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug).With("component", "list")
	l.Warn("missing record", "index", 7)

	out := buf.String()
	assert.Contains(t, out, "component=list")
	assert.Contains(t, out, "index=7")
	assert.Contains(t, out, "level=WARN")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlist.log")
	l, c, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, c.Close())

	_, _, err = Open(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), slog.LevelInfo)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "open log file"))
}

func TestDiscard(t *testing.T) {
	// Must be callable without panicking.
	Discard.With("k", "v").Error("dropped")
}
