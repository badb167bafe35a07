// Package config loads lineno settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LINENO"

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds environment based configuration. Command line flags
// take precedence over these values.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	// Env: LINENO_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat is either console or json.
	// Env: LINENO_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Number prefixes every printed line with its line number.
	// Env: LINENO_NUMBER (default: false)
	Number bool `envconfig:"NUMBER" default:"false"`

	// MaxLineSize is the longest accepted input line in bytes.
	// Env: LINENO_MAX_LINE_SIZE (default: 1048576)
	MaxLineSize int `envconfig:"MAX_LINE_SIZE" default:"1048576"`
}

// Validate checks the values that can be checked without building a
// logger.
func (c Config) Validate() error {
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: want %s or %s", c.LogFormat, FormatConsole, FormatJSON)
	}
	if c.MaxLineSize < 1 {
		return fmt.Errorf("invalid max line size %d: must be positive", c.MaxLineSize)
	}
	return nil
}

// LoadFromEnv loads configuration from LINENO_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file. If path is
// empty, ".env" in the current directory is used. A missing file is
// not an error. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load reads the .env file at envPath, if any, then the environment.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
