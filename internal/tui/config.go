package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// DisplayConfig controls how the date pickers lay out dates and times.
type DisplayConfig struct {
	DateFormat string `toml:"date_format"`
	TimeFormat string `toml:"time_format"`
}

// LocaleConfig selects the dialog language. Empty means the environment decides.
type LocaleConfig struct {
	Lang string `toml:"lang"`
}

// ThemeConfig holds optional color overrides. Empty strings use ANSI defaults.
// Values can be ANSI numbers ("1"), 256-palette numbers ("196"), or hex ("#ff0000").
type ThemeConfig struct {
	Fg       string `toml:"fg"`
	FgDim    string `toml:"fg_dim"`
	FgBright string `toml:"fg_bright"`
	Border   string `toml:"border"`
	Accent   string `toml:"accent"`
	Selected string `toml:"selected"`
}

// Config is the sieve configuration file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Locale  LocaleConfig  `toml:"locale"`
	Theme   ThemeConfig   `toml:"theme"`
}

// DefaultDisplayConfig is used when the config file leaves the layouts unset.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{DateFormat: "2006-01-02", TimeFormat: "15:04:05"}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/sieve/config.toml,
// falling back to ~/.config/sieve/config.toml if unset.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sieve", "config.toml")
}

const defaultConfigContent = `# sieve configuration.
#
# [display]
# date_format = "2006-01-02"   # Go time layout, digits only
# time_format = "15:04:05"     # Go time layout, digits only
#
# [locale]
# lang = "de_DE.UTF-8"         # default: LC_ALL, LC_MESSAGES, LANG
#
# [theme]
# Colors default to ANSI (0-15) so the dialog inherits your terminal theme.
# Override with ANSI numbers, 256-palette numbers, or hex values.
#
# fg = "7"          # normal white
# fg_dim = "8"      # bright black
# fg_bright = "15"  # bright white
# border = "8"      # bright black
# accent = "4"      # blue
# selected = "2"    # green
`

// EnsureDefaultConfig creates the default config file if it does not exist.
// Returns the path to the config file.
func EnsureDefaultConfig(path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return path, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config: unknown keys %s", strings.Join(keys, ", "))
	}

	def := DefaultDisplayConfig()
	if cfg.Display.DateFormat == "" {
		cfg.Display.DateFormat = def.DateFormat
	}
	if cfg.Display.TimeFormat == "" {
		cfg.Display.TimeFormat = def.TimeFormat
	}
	if err := validateLayout(cfg.Display.DateFormat); err != nil {
		return nil, fmt.Errorf("load config: date_format: %w", err)
	}
	if err := validateLayout(cfg.Display.TimeFormat); err != nil {
		return nil, fmt.Errorf("load config: time_format: %w", err)
	}
	return &cfg, nil
}

// validateLayout rejects layouts the digit masks cannot edit: month names,
// AM/PM markers and tokens without zero padding ("1", "2", "_2", "3", "4",
// "5", "__2"). A usable layout formats every time to its own width.
func validateLayout(layout string) error {
	for _, r := range layout {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			return fmt.Errorf("layout %q must be numeric", layout)
		}
	}
	if strings.Contains(layout, "_") {
		return fmt.Errorf("layout %q must be zero-padded", layout)
	}
	width := utf8.RuneCountInString(layout)
	for _, ref := range layoutSamples {
		if utf8.RuneCountInString(ref.Format(layout)) != width {
			return fmt.Errorf("layout %q must be zero-padded", layout)
		}
	}
	return nil
}

// layoutSamples are one- and two-digit values for every numeric field.
var layoutSamples = []time.Time{
	time.Date(2001, 1, 1, 1, 1, 1, 0, time.UTC),
	time.Date(2099, 12, 28, 22, 58, 59, 123456789, time.UTC),
}

// BuildTheme returns a Theme starting from ANSI defaults with any
// non-empty ThemeConfig fields applied as overrides.
func BuildTheme(tc ThemeConfig) Theme {
	t := TerminalTheme()
	override := func(dst *lipgloss.Color, src string) {
		if src != "" {
			*dst = lipgloss.Color(src)
		}
	}
	override(&t.Fg, tc.Fg)
	override(&t.FgDim, tc.FgDim)
	override(&t.FgBright, tc.FgBright)
	override(&t.Border, tc.Border)
	override(&t.Accent, tc.Accent)
	override(&t.Selected, tc.Selected)
	return t
}
