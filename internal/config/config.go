// Package config reads mathdrill settings from the environment and an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDB       = "MATHDRILL_DB"
	EnvLogLevel = "MATHDRILL_LOG_LEVEL"
	EnvSeed     = "MATHDRILL_SEED"
)

type Config struct {
	// DBPath is the database file. Empty means the platform default.
	DBPath   string
	LogLevel slog.Level

	// Seed is used for question generation when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// Load reads .env if it exists, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:   os.Getenv(EnvDB),
		LogLevel: slog.LevelInfo,
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q is not a valid seed: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
