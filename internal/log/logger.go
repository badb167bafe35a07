// Package log builds the zap logger used by the lineno command.
package log

import (
	"fmt"
	"io"

	"github.com/thimc/lineno/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w in the given format at or above
// the given level. Unknown formats fall back to the console encoder.
func New(w io.Writer, format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	switch format {
	case config.FormatJSON:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// FromConfig is New with the format and level taken from cfg.
func FromConfig(w io.Writer, cfg config.Config) (*zap.Logger, error) {
	return New(w, cfg.LogFormat, cfg.LogLevel)
}
