package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := New(Config{LogDir: dir, Quiet: true, Service: "test"})

	l.Slog().Info("guess accepted", "title", "Titanic (1997)")
	l.Slog().Debug("hidden")
	require.NoError(t, l.Close())

	require.NotEmpty(t, l.Path())
	assert.True(t, strings.HasPrefix(filepath.Base(l.Path()), "test_"))
	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "guess accepted", entry["msg"])
	assert.Equal(t, "Titanic (1997)", entry["title"])
	assert.Equal(t, "test", entry["service"])
}

func TestNew_VerboseWritesDebug(t *testing.T) {
	dir := t.TempDir()
	l := New(Config{LogDir: dir, Quiet: true, Verbose: true})

	l.Slog().Debug("tick", "remaining", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"tick"`)
	assert.Contains(t, filepath.Base(l.Path()), defaultService)
}

func TestCloseWithoutFile(t *testing.T) {
	l := New(Config{Quiet: true})
	l.Slog().Info("dropped")

	assert.NoError(t, l.Close())
	assert.Empty(t, l.Path())
	assert.NoError(t, Discard().Close())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "logs"), expandPath("~/logs"))
	assert.Equal(t, "/tmp/x", expandPath("/tmp/x"))
}
