// Package config handles preference loading and defaults. Only UI
// preferences live here; tasks themselves are never written to disk.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

const (
	dirName      = ".taskpad"
	fileName     = "config.toml"
	DefaultTheme = "dark"

	// EnvTheme overrides the configured theme when set.
	EnvTheme = "TASKPAD_THEME"
)

// Config holds the persisted preferences.
type Config struct {
	Theme   string `toml:"theme"`    // "dark" | "light"
	LogFile string `toml:"log_file"` // empty disables debug logging
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{Theme: DefaultTheme}
}

// Path returns the config file location under the user's home.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. The TASKPAD_THEME env var wins over the file.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return loadFrom(p)
}

func loadFrom(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv(EnvTheme)); env != "" {
		cfg.Theme = env
	}
}

// Save writes the config atomically, creating ~/.taskpad if needed.
func (c Config) Save() error {
	p, err := Path()
	if err != nil {
		return err
	}
	return c.saveTo(p)
}

func (c Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
