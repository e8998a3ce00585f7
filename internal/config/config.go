// Package config loads lingua settings from defaults and the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/lingua/internal/energy"
)

// Config holds all lingua configuration.
type Config struct {
	// UserID identifies the learner in logs and summaries. Default: "learner".
	UserID string

	// MaxEnergy is the energy cap. Default: energy.DefaultMax.
	MaxEnergy int

	// CoursePath points at a course JSON file. Empty means the bundled course.
	CoursePath string

	Log LogConfig
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string // "debug", "info", "warn" or "error". Default: "info"
	Format string // "text" or "json". Default: "text"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserID:    "learner",
		MaxEnergy: energy.DefaultMax,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv("LINGUA_USER"); u != "" {
		cfg.UserID = u
	}
	if e := os.Getenv("LINGUA_MAX_ENERGY"); e != "" {
		n, err := strconv.Atoi(e)
		if err != nil {
			return cfg, fmt.Errorf("LINGUA_MAX_ENERGY: %w", err)
		}
		cfg.MaxEnergy = n
	}
	if c := os.Getenv("LINGUA_COURSE"); c != "" {
		cfg.CoursePath = c
	}
	if l := os.Getenv("LINGUA_LOG_LEVEL"); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}
	if f := os.Getenv("LINGUA_LOG_FORMAT"); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}

	return cfg, nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.MaxEnergy < 1 {
		return fmt.Errorf("max energy must be at least 1, got %d", c.MaxEnergy)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}

// SlogLevel maps Level onto a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", l.Level)
	}
}
