// Package config handles codelens user preferences, stored as JSON in a
// project-local .codelens directory or the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWidth is the default box width for terminal rendering.
const DefaultWidth = 60

// Config holds user preferences.
type Config struct {
	APIKey   string `json:"api_key"`
	Provider string `json:"provider"` // "anthropic" or "openai"
	Model    string `json:"model"`    // optional model override
	Theme    string `json:"theme"`    // "light" or "dark"
	Width    int    `json:"width"`    // box width for rendered output
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme: "dark",
		Width: DefaultWidth,
	}
}

// Dir returns the directory where config is stored.
// Prefers a project-local .codelens directory, falling back to the home dir.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".codelens")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codelens"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk. A missing file yields defaults.
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
