package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(&buf, "", "info")
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("game started", "game_id", "g1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "game_id=g1")
	assert.Contains(t, out, "service=sweaters-api")
}

func TestNew_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger, closer, err := New(&buf, dir, "debug")
	require.NoError(t, err)

	logger.Warn("failed to add game", "user_id", "u1")
	require.NoError(t, closer.Close())

	files, err := filepath.Glob(filepath.Join(dir, "api_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record))
	assert.Equal(t, "failed to add game", record["msg"])
	assert.Equal(t, "u1", record["user_id"])
	assert.Contains(t, buf.String(), "failed to add game")
}
