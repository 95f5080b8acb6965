// Package config resolves the atm configuration: built-in defaults overlaid
// by an optional init.lua in the config directory. Command line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/jcubic/atm/banner"
)

// Config holds every knob the application reads. It is passed explicitly to
// call sites; there is no package-level default state.
type Config struct {
	// Text is the banner text.
	Text string

	// Font is the figlet font name.
	Font string

	// Placeholder is shown while generation is pending. Empty shows the
	// plain text instead.
	Placeholder string

	// Sizing derives the banner width from the terminal width.
	Sizing banner.Sizing

	// HorizontalLayout and VerticalLayout fit the generated art.
	HorizontalLayout banner.Layout
	VerticalLayout   banner.Layout

	// WhitespaceBreak wraps overlong text on word boundaries.
	WhitespaceBreak bool

	// NoResize keeps the width resolved at startup; later terminal
	// resizes reflow the layout but never the banner.
	NoResize bool

	// Color is the lipgloss foreground color for the banner.
	Color string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Text:            "atm",
		Font:            "standard",
		Sizing:          banner.Responsive(),
		WhitespaceBreak: true,
		Color:           "99",
		LogLevel:        "warn",
	}
}

// Options builds the generation options for the given resolved width.
// Zero or negative width means unconstrained.
func (c Config) Options(width int) banner.Options {
	opts := banner.Options{
		Font:             c.Font,
		HorizontalLayout: c.HorizontalLayout,
		VerticalLayout:   c.VerticalLayout,
		WhitespaceBreak:  c.WhitespaceBreak,
	}
	if width > 0 {
		opts.Width = width
	}
	return opts
}

// Dir returns the atm configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "atm")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// LogFile returns the path to the log file.
func LogFile() string {
	return filepath.Join(Dir(), "atm.log")
}

// Load returns the defaults overlaid with init.lua, when one exists.
// On a broken init.lua the defaults are returned along with the error so
// the application can warn and keep going.
func Load() (Config, error) {
	cfg := Default()
	path := InitFile()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	return LoadFile(cfg, path)
}

// ParseSizing parses a sizing directive from its configuration form:
// "auto"/"none", "full", a percentage like "50%", a fraction like "0.5",
// or a plain column count like "80".
func ParseSizing(s string) (banner.Sizing, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "auto", "none":
		return banner.Unconstrained(), nil
	case "full":
		return banner.Responsive(), nil
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return banner.Sizing{}, fmt.Errorf("config: bad sizing %q", s)
		}
		return banner.ResponsiveFraction(pct / 100), nil
	}
	if cols, err := strconv.Atoi(s); err == nil {
		return banner.Fixed(cols), nil
	}
	if frac, err := strconv.ParseFloat(s, 64); err == nil {
		return banner.ResponsiveFraction(frac), nil
	}
	return banner.Sizing{}, fmt.Errorf("config: bad sizing %q", s)
}

// ParseLayout parses a layout mode: "default", "full", or "fitted".
func ParseLayout(s string) (banner.Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return banner.LayoutDefault, nil
	case "full":
		return banner.LayoutFull, nil
	case "fitted":
		return banner.LayoutFitted, nil
	}
	return banner.LayoutDefault, fmt.Errorf("config: bad layout %q", s)
}
