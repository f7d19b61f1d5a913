// Package config loads and saves the rockpile TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all rockpile configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	History    HistoryConfig    `toml:"history"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	FundFile string `toml:"fund_file"`
	Currency string `toml:"currency"`
}

// HistoryConfig controls the cycle history database.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			FundFile: "fund.json",
			Currency: "USD",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rockpile")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rockpile")
}

// DataDir returns the XDG-compliant data directory, home of the history database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rockpile")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "rockpile")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
// Keys missing from the file keep their default values.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the config location
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
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// FundFile returns the fund file path from env var or config, in that order.
func FundFile(cfg Config) string {
	if p := os.Getenv("ROCKPILE_FUND_FILE"); p != "" {
		return p
	}
	if cfg.General.FundFile != "" {
		return cfg.General.FundFile
	}
	return "fund.json"
}

// HistoryDB returns the history database path from env var or config,
// falling back to history.db in DataDir.
func HistoryDB(cfg Config) string {
	if p := os.Getenv("ROCKPILE_HISTORY_DB"); p != "" {
		return p
	}
	if cfg.History.DBPath != "" {
		return cfg.History.DBPath
	}
	return filepath.Join(DataDir(), "history.db")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
