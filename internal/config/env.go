// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from DOMCMP_* environment variables.
type Config struct {
	LogLevel   string `env:"DOMCMP_LOG_LEVEL" envDefault:"warn"`
	Format     string `env:"DOMCMP_FORMAT" envDefault:"text"`
	PayloadKey string `env:"DOMCMP_PAYLOAD_KEY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown values fall back to warn.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
