// Package config loads optional game settings from .hilo/config.yaml and
// HILO_* environment variables. A missing file means defaults; env always
// wins over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultLogLevel is used when neither file nor env set a level.
const DefaultLogLevel = "warn"

// Environment variable names recognized by Load.
const (
	EnvLogLevel     = "HILO_LOG_LEVEL"
	EnvSeed         = "HILO_SEED"
	EnvRevealSecret = "HILO_REVEAL_SECRET"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses .hilo/config.yaml from the given base path, then
// applies HILO_* environment overrides. If the file doesn't exist, defaults
// are used.
func Load(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, ".hilo", "config.yaml")

	cfg := DefaultConfig()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return ValidationError{Field: EnvSeed, Message: "must be an unsigned integer"}
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvRevealSecret); v != "" {
		reveal, err := strconv.ParseBool(v)
		if err != nil {
			return ValidationError{Field: EnvRevealSecret, Message: "must be a boolean"}
		}
		cfg.RevealSecret = reveal
	}
	return nil
}

// Validate checks that all config values are valid.
func Validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}
	}
	return nil
}
