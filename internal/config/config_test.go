package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "learner", cfg.UserID)
	assert.Equal(t, 5, cfg.MaxEnergy)
	assert.Empty(t, cfg.CoursePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LINGUA_USER", "ana")
	t.Setenv("LINGUA_MAX_ENERGY", "8")
	t.Setenv("LINGUA_COURSE", "/tmp/course.json")
	t.Setenv("LINGUA_LOG_LEVEL", "DEBUG")
	t.Setenv("LINGUA_LOG_FORMAT", "json")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "ana", cfg.UserID)
	assert.Equal(t, 8, cfg.MaxEnergy)
	assert.Equal(t, "/tmp/course.json", cfg.CoursePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_BadEnergy(t *testing.T) {
	t.Setenv("LINGUA_MAX_ENERGY", "lots")

	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "LINGUA_MAX_ENERGY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero energy", func(c *Config) { c.MaxEnergy = 0 }},
		{"negative energy", func(c *Config) { c.MaxEnergy = -3 }},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := LogConfig{Level: tt.in}.SlogLevel()
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
