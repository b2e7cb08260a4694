// Package config loads and saves hburn's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all hburn configuration. The budget map is an explicit value
// handed to the resolver at call time; nothing reads it ambiently.
type Config struct {
	General GeneralConfig      `toml:"general"`
	Budgets map[string]float64 `toml:"budgets,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DataDir is scanned for export files when no --file is given.
	DataDir string `toml:"data_dir"`
	// DefaultBudget is the fallback contracted hours for projects without
	// an explicit budget entry.
	DefaultBudget float64 `toml:"default_budget"`
	// DayFirst controls ambiguous date parsing (10/01/2024 = Jan 10 when
	// true). Clockify exports from European locales need this.
	DayFirst bool `toml:"day_first"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DataDir:       "data",
			DefaultBudget: 100,
			DayFirst:      true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
