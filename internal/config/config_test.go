package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"LINENO_LOG_LEVEL",
	"LINENO_LOG_FORMAT",
	"LINENO_NUMBER",
	"LINENO_MAX_LINE_SIZE",
}

// clearEnvVars unsets every lineno variable for the duration of the
// test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat)
	assert.False(t, cfg.Number)
	assert.Equal(t, 1048576, cfg.MaxLineSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LINENO_LOG_LEVEL", "debug")
	t.Setenv("LINENO_LOG_FORMAT", "json")
	t.Setenv("LINENO_NUMBER", "true")
	t.Setenv("LINENO_MAX_LINE_SIZE", "64")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{LogLevel: "debug", LogFormat: FormatJSON, Number: true, MaxLineSize: 64}, cfg)
}

func TestLoadFromEnv_InvalidNumber(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LINENO_MAX_LINE_SIZE", "lots")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", LogFormat: FormatConsole, MaxLineSize: 10}
	assert.NoError(t, valid.Validate())

	badFormat := valid
	badFormat.LogFormat = "xml"
	assert.ErrorContains(t, badFormat.Validate(), `invalid log format "xml"`)

	badSize := valid
	badSize.MaxLineSize = 0
	assert.ErrorContains(t, badSize.Validate(), "invalid max line size 0")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "lineno.env")
	require.NoError(t, os.WriteFile(path, []byte("LINENO_NUMBER=true\nLINENO_LOG_LEVEL=info\n"), 0o600))
	// set in the environment, so the file must not override it
	t.Setenv("LINENO_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Number)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LINENO_LOG_FORMAT", "yaml")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
