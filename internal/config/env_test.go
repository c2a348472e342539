package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DOMCMP_LOG_LEVEL", "DOMCMP_FORMAT", "DOMCMP_PAYLOAD_KEY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.Empty(t, cfg.PayloadKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOMCMP_LOG_LEVEL", "debug")
	t.Setenv("DOMCMP_FORMAT", "json")
	t.Setenv("DOMCMP_PAYLOAD_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "secret", cfg.PayloadKey)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{LogLevel: tt.in}.Level())
		})
	}
}
