package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool `env:"DEBUG"`

	// StoragePath is the directory where session and history files are stored
	StoragePath string `env:"STORAGE_PATH"`

	// RequestTimeout bounds every request sent to the cluster
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		StoragePath:    "", // Will use DefaultStoragePath() from storage package
		RequestTimeout: 30 * time.Second,
	}
}

// ConfigFromEnv creates a configuration from QUARRY_-prefixed environment
// variables, falling back to defaults for anything unset.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "QUARRY_"}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
