package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLoadConfigFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`
[display]
date_format = "02.01.2006"
time_format = "15:04"

[locale]
lang = "de_DE.UTF-8"

[theme]
accent = "#7aa2f7"
`), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.DateFormat != "02.01.2006" {
		t.Errorf("date_format = %q", cfg.Display.DateFormat)
	}
	if cfg.Display.TimeFormat != "15:04" {
		t.Errorf("time_format = %q", cfg.Display.TimeFormat)
	}
	if cfg.Locale.Lang != "de_DE.UTF-8" {
		t.Errorf("lang = %q", cfg.Locale.Lang)
	}
	if cfg.Theme.Accent != "#7aa2f7" {
		t.Errorf("accent = %q", cfg.Theme.Accent)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(""), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display != DefaultDisplayConfig() {
		t.Errorf("display = %+v, want defaults", cfg.Display)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[display\n", "load config"},
		{"unknown key", "[display]\nzone = \"UTC\"\n", "unknown keys display.zone"},
		{"named month", "[display]\ndate_format = \"Jan 2 2006\"\n", "must be numeric"},
		{"unpadded month and day", "[display]\ndate_format = \"2006-1-2\"\n", "must be zero-padded"},
		{"space padded day", "[display]\ndate_format = \"_2.01.2006\"\n", "must be zero-padded"},
		{"space padded year day", "[display]\ndate_format = \"2006 __2\"\n", "must be zero-padded"},
		{"unpadded hour", "[display]\ntime_format = \"3:04\"\n", "must be zero-padded"},
		{"unpadded minute", "[display]\ntime_format = \"15:4\"\n", "must be zero-padded"},
		{"unpadded second", "[display]\ntime_format = \"15:04:5\"\n", "must be zero-padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte(tt.content), 0o644)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestValidateLayoutAcceptsPadded(t *testing.T) {
	for _, layout := range []string{"2006-01-02", "02.01.2006", "06/01/02", "2006 002", "15:04:05", "15:04", "03:04:05"} {
		if err := validateLayout(layout); err != nil {
			t.Errorf("validateLayout(%q) = %v", layout, err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnsureDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve", "config.toml")
	got, err := EnsureDefaultConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("default config does not load: %v", err)
	}

	// Existing files are left alone.
	os.WriteFile(path, []byte("[locale]\nlang = \"es\"\n"), 0o644)
	if _, err := EnsureDefaultConfig(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale.Lang != "es" {
		t.Errorf("existing config overwritten, lang = %q", cfg.Locale.Lang)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigPath(); got != "/xdg/sieve/config.toml" {
		t.Errorf("path = %q", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/me")
	if got := DefaultConfigPath(); got != "/home/me/.config/sieve/config.toml" {
		t.Errorf("path = %q", got)
	}
}

func TestBuildTheme(t *testing.T) {
	th := BuildTheme(ThemeConfig{Accent: "#ff0000", Selected: "10"})
	if th.Accent != lipgloss.Color("#ff0000") {
		t.Errorf("accent = %q", th.Accent)
	}
	if th.Selected != lipgloss.Color("10") {
		t.Errorf("selected = %q", th.Selected)
	}
	if th.Fg != TerminalTheme().Fg {
		t.Errorf("fg = %q, want default", th.Fg)
	}
}
