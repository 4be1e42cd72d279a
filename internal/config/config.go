// Package config loads gocube settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_engine"
)

// DirName is the per-user directory holding config, state and database.
const DirName = ".gocube_engine"

// Config holds the CLI settings. Environment variables override the file.
type Config struct {
	DBPath         string `yaml:"db_path" env:"GOCUBE_DB_PATH"`
	StatePath      string `yaml:"state_path" env:"GOCUBE_STATE_PATH"`
	ScrambleLength int    `yaml:"scramble_length" env:"GOCUBE_SCRAMBLE_LENGTH"`
	Seed           uint64 `yaml:"seed" env:"GOCUBE_SEED"` // 0 = random
	LogLevel       string `yaml:"log_level" env:"GOCUBE_LOG_LEVEL"`
	LogFormat      string `yaml:"log_format" env:"GOCUBE_LOG_FORMAT"`
}

// DefaultDir returns ~/.gocube_engine.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in settings rooted at dir.
func Default(dir string) Config {
	return Config{
		DBPath:         filepath.Join(dir, "gocube.db"),
		StatePath:      filepath.Join(dir, "state.json"),
		ScrambleLength: gocube.DefaultScrambleLength,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// Load reads the config file at path, then applies environment overrides.
// An empty path means the default location, where a missing file is fine.
// An explicit path must exist.
func Load(path string) (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(dir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if c.ScrambleLength < 0 {
		return fmt.Errorf("scramble_length must be >= 0, got %d", c.ScrambleLength)
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.StatePath == "" {
		return errors.New("state_path must not be empty")
	}
	return nil
}
