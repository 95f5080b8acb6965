package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jcubic/atm/banner"
)

func writeInitLua(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeInitLua(t, `
atm = {
    text = "hello",
    font = "slant",
    sizing = "50%",
    placeholder = "Loading...",
    horizontal_layout = "fitted",
    whitespace_break = false,
    no_resize = true,
    color = "212",
    log_level = "debug",
}
`)

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Text != "hello" {
		t.Errorf("Text = %q, want %q", cfg.Text, "hello")
	}
	if cfg.Font != "slant" {
		t.Errorf("Font = %q, want %q", cfg.Font, "slant")
	}
	if cfg.Placeholder != "Loading..." {
		t.Errorf("Placeholder = %q", cfg.Placeholder)
	}
	if w, ok := cfg.Sizing.Resolve(100); !ok || w != 50 {
		t.Errorf("Sizing.Resolve(100) = %d, %v; want 50, true", w, ok)
	}
	if cfg.HorizontalLayout != banner.LayoutFitted {
		t.Errorf("HorizontalLayout = %v, want fitted", cfg.HorizontalLayout)
	}
	if cfg.WhitespaceBreak {
		t.Error("WhitespaceBreak should be overridden to false")
	}
	if !cfg.NoResize {
		t.Error("NoResize should be overridden to true")
	}
	if cfg.Color != "212" || cfg.LogLevel != "debug" {
		t.Errorf("Color/LogLevel = %q/%q", cfg.Color, cfg.LogLevel)
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := writeInitLua(t, `atm = { font = "doom" }`)

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Font != "doom" {
		t.Errorf("Font = %q, want %q", cfg.Font, "doom")
	}
	// Untouched fields keep their defaults.
	if cfg.Text != Default().Text {
		t.Errorf("Text = %q, want default %q", cfg.Text, Default().Text)
	}
	if cfg.Sizing != Default().Sizing {
		t.Errorf("Sizing = %v, want default", cfg.Sizing)
	}
}

func TestLoadFileNoTable(t *testing.T) {
	path := writeInitLua(t, `local x = 1`)

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != Default() {
		t.Error("config without an atm table should equal the defaults")
	}
}

func TestLoadFileBrokenScript(t *testing.T) {
	path := writeInitLua(t, `this is not lua`)

	cfg, err := LoadFile(Default(), path)
	if err == nil {
		t.Fatal("expected an error for a broken script")
	}
	if cfg != Default() {
		t.Error("broken script should leave the defaults untouched")
	}
}

func TestLoadFileBadSizing(t *testing.T) {
	path := writeInitLua(t, `atm = { sizing = "wat" }`)

	if _, err := LoadFile(Default(), path); err == nil {
		t.Fatal("expected an error for a bad sizing directive")
	}
}

func TestParseSizing(t *testing.T) {
	tests := []struct {
		in      string
		wantW   int // resolved against 100 columns
		wantOK  bool
		wantErr bool
	}{
		{"full", 100, true, false},
		{"50%", 50, true, false},
		{"0.25", 25, true, false},
		{"80", 80, true, false},
		{"auto", 0, false, false},
		{"none", 0, false, false},
		{"", 0, false, false},
		{"150%", 100, true, false}, // clamped
		{"garbage", 0, false, true},
		{"12%%", 0, false, true},
	}
	for _, tt := range tests {
		s, err := ParseSizing(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSizing(%q): want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSizing(%q): %v", tt.in, err)
			continue
		}
		w, ok := s.Resolve(100)
		if w != tt.wantW || ok != tt.wantOK {
			t.Errorf("ParseSizing(%q).Resolve(100) = %d, %v; want %d, %v",
				tt.in, w, ok, tt.wantW, tt.wantOK)
		}
	}
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]banner.Layout{
		"":        banner.LayoutDefault,
		"default": banner.LayoutDefault,
		"full":    banner.LayoutFull,
		"fitted":  banner.LayoutFitted,
		"Fitted":  banner.LayoutFitted,
	} {
		got, err := ParseLayout(in)
		if err != nil || got != want {
			t.Errorf("ParseLayout(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLayout("sideways"); err == nil {
		t.Error("ParseLayout should reject unknown modes")
	}
}
