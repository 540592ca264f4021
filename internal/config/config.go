// Package config handles runtime settings for the desktop host process.
//
// Settings come from environment variables parsed into a typed struct via
// caarlos0/env. Every variable has a default so the host starts with zero
// configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Storage mode selectors.
const (
	// ModeFile persists the collection as a single JSON document on disk.
	ModeFile = "file"
	// ModeKV persists the collection under one key in a local
	// key-value store.
	ModeKV = "kv"
)

// Config holds all runtime configuration for the Shelfmark desktop host.
type Config struct {
	// ListenAddr is the localhost address the UI process connects to.
	ListenAddr string `env:"SHELFMARK_LISTEN_ADDR" envDefault:"127.0.0.1:8090"`

	// DataDir is the directory holding the persisted collection.
	DataDir string `env:"SHELFMARK_DATA_DIR" envDefault:"./data"`

	// StorageMode selects the persistence backend: "file" or "kv".
	StorageMode string `env:"SHELFMARK_STORAGE_MODE" envDefault:"file"`

	// LogLevel is the minimum logging level (debug, info, warn, error).
	LogLevel string `env:"SHELFMARK_LOG_LEVEL" envDefault:"info"`

	// Seed controls whether an empty collection is seeded with the
	// sample books on first start.
	Seed bool `env:"SHELFMARK_SEED" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.StorageMode != ModeFile && cfg.StorageMode != ModeKV {
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}
	return cfg, nil
}

// DocumentPath returns the JSON document location for file mode.
func (c *Config) DocumentPath() string {
	return filepath.Join(c.DataDir, "db.json")
}

// KVPath returns the key-value store location for kv mode.
func (c *Config) KVPath() string {
	return filepath.Join(c.DataDir, "books.db")
}
