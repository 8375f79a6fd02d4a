// Package config loads host configuration from a YAML file with
// environment variable overrides. None of it tunes the economic formulas;
// those are fixed.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all host configuration.
type Config struct {
	Game struct {
		// Seed fixes the random draws so a season replays exactly.
		// 0 means a fresh unpredictable season every time.
		Seed int64 `yaml:"seed"`
	} `yaml:"game"`
	Database struct {
		// SQLitePath is the season history database. Empty disables
		// history recording.
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"` // debug, info, warn, error
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LEMONADE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v := os.Getenv("LEMONADE_DB"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LEMONADE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	return cfg, nil
}
