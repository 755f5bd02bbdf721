package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boids.log")

	logger, cleanup, err := NewLogger(LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("tick", zap.Int("tick", 7))
	cleanup()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1, "debug must be filtered out at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "tick", entry["msg"])
	assert.Equal(t, "boids", entry["logger"])
	assert.EqualValues(t, 7, entry["tick"])
}

func TestNewLogger_NoSink(t *testing.T) {
	logger, cleanup, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, _, err := NewLogger(LogConfig{Level: "chatty", Console: true})
	assert.Error(t, err)
}
