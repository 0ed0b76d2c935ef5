// Package prefs loads and saves the per-user preferences record.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Paintersrp/t2/internal/constants"
	"github.com/Paintersrp/t2/internal/theme"
)

// UserConfig is the persisted preferences record. VaultPath is an optional
// override; an empty value means the resolver falls through to environment
// variables and the default location.
type UserConfig struct {
	Theme     string `json:"theme"`
	VaultPath string `json:"vaultPath,omitempty"`
}

// DefaultConfig returns the config used when nothing is stored yet.
func DefaultConfig() UserConfig {
	return UserConfig{Theme: theme.Default}
}

// Dir returns the preferences directory for the current user.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.ConfigDir
	}
	return filepath.Join(home, constants.ConfigDir)
}

// Path returns the preferences file location.
func Path() string {
	return filepath.Join(Dir(), constants.ConfigFile)
}

// Load reads the preferences record. A missing file, unreadable file, or
// malformed content all yield the default config; Load never fails. A stored
// theme outside the recognized preset set is replaced with the default.
func Load() UserConfig {
	data, err := os.ReadFile(Path())
	if err != nil {
		return DefaultConfig()
	}

	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	if !theme.Valid(cfg.Theme) {
		cfg.Theme = theme.Default
	}

	return cfg
}

// Save writes the record, creating the containing directory if absent.
// Filesystem failures are propagated, never swallowed.
func Save(cfg UserConfig) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SyncViper mirrors the loaded preferences into viper so commands and the
// editor launcher share one configuration view.
func SyncViper(cfg UserConfig) {
	viper.Set("theme", cfg.Theme)
	viper.Set("vaultpath", cfg.VaultPath)
}
