package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thimc/lineno/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.FormatJSON, "debug")
	require.NoError(t, err)

	logger.Debug("debug message", zap.Int("line", 3))
	logger.Info("info message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug message", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, float64(3), entry["line"])
	assert.Contains(t, entry, "ts")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.FormatConsole, "info")
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "INFO")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.FormatJSON, "WARN")
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.FormatJSON, "loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger, err := FromConfig(&buf, config.Config{LogFormat: config.FormatJSON, LogLevel: "error"})
	require.NoError(t, err)

	logger.Warn("dropped")
	logger.Error("kept")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
