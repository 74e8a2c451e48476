package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stholm/stholm/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.CollapseIdentical {
		t.Error("collapse should default on")
	}
	gaps := cfg.Gaps()
	for _, c := range []byte(".-_~:") {
		if !gaps[c] {
			t.Errorf("default gap set missing %q", c)
		}
	}
	if gaps['A'] {
		t.Error("A must not be a gap")
	}
}

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stholm.toml")
	content := `
gap_chars = ".-"
collapse_identical = false

[theme]
double_compatible = "42"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GapChars != ".-" {
		t.Errorf("gap_chars = %q, want .-", cfg.GapChars)
	}
	if cfg.CollapseIdentical {
		t.Error("collapse_identical should be false")
	}
	if cfg.Theme.DoubleCompatible != "42" {
		t.Errorf("theme.double_compatible = %q, want 42", cfg.Theme.DoubleCompatible)
	}
}

func TestLoadPathPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stholm.toml")
	if err := os.WriteFile(path, []byte("gap_chars = \"-\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GapChars != "-" {
		t.Errorf("gap_chars = %q, want -", cfg.GapChars)
	}
	if !cfg.CollapseIdentical {
		t.Error("unset collapse_identical should keep its default")
	}
}

func TestLoadPathMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stholm.toml")
	if err := os.WriteFile(path, []byte("gap_chars = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPath(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadPathMissing(t *testing.T) {
	cfg, err := LoadPath(filepath.Join(t.TempDir(), "nope.toml"))
	if !os.IsNotExist(err) {
		t.Fatalf("error = %v, want not-exist", err)
	}
	if cfg.GapChars != Default().GapChars {
		t.Error("missing file should return defaults")
	}
}
