// Package config loads stholm settings from a TOML file.
//
// Search order:
//  1. ./stholm.toml (current directory)
//  2. $XDG_CONFIG_HOME/stholm/stholm.toml (falling back to
//     ~/.config/stholm/stholm.toml)
//
// Missing files fall back to defaults; a malformed file is an error so the
// user notices a typo instead of silently losing their settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/stholm/stholm/pkg/errors"
	"github.com/stholm/stholm/pkg/structure"
)

// Theme holds terminal color overrides, as ANSI-256 or hex color strings
// understood by lipgloss. Empty fields keep the built-in palette.
type Theme struct {
	Unchanged          string `toml:"unchanged"`
	SingleCompatible   string `toml:"single_compatible"`
	DoubleCompatible   string `toml:"double_compatible"`
	SingleIncompatible string `toml:"single_incompatible"`
	DoubleIncompatible string `toml:"double_incompatible"`
	Gap                string `toml:"gap"`
	Tree               string `toml:"tree"`
}

// Config is the application configuration.
type Config struct {
	// GapChars lists the glyphs treated as alignment gaps.
	GapChars string `toml:"gap_chars"`
	// CollapseIdentical pre-groups identical sequences before clustering.
	CollapseIdentical bool `toml:"collapse_identical"`
	// Theme holds terminal color overrides.
	Theme Theme `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GapChars:          ".-_~:",
		CollapseIdentical: true,
	}
}

// Gaps returns the configured gap set.
func (c Config) Gaps() structure.GapSet {
	return structure.NewGapSet([]byte(c.GapChars)...)
}

// Load reads the configuration, falling back to Default when no file
// exists. The returned path is the file that was loaded, or "" for the
// defaults. A file that exists but fails to decode is an error.
func Load() (Config, string, error) {
	for _, path := range searchPaths() {
		cfg, err := LoadPath(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Default(), "", err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// LoadPath reads the configuration from one specific file. Fields absent
// from the file keep their defaults.
func LoadPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, err
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{"stholm.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "stholm", "stholm.toml"))
	}
	return paths
}
