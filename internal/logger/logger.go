// Package logger provides structured diagnostics for minigrep on top of zerolog
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const EnvLogLevel = "MINIGREP_LOG_LEVEL"

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool
	Output io.Writer
}

// New creates a logger. Unknown or empty levels fall back to warn, so a plain CLI run prints only search output.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "minigrep").
		Logger()
}

// FromEnv builds a pretty stderr logger with the level taken from MINIGREP_LOG_LEVEL
func FromEnv() zerolog.Logger {
	return New(Config{
		Level:  envVarOrDefault(EnvLogLevel, "warn"),
		Pretty: true,
	})
}

func envVarOrDefault(envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}
