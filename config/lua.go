package config

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"
)

// LoadFile evaluates a Lua configuration file and overlays it on cfg.
// The script sets fields on a global `atm` table:
//
//	atm = {
//	    text = "hello",
//	    font = "slant",
//	    sizing = "50%",
//	    placeholder = "Loading...",
//	    horizontal_layout = "fitted",
//	    vertical_layout = "default",
//	    whitespace_break = true,
//	    no_resize = false,
//	    color = "212",
//	    log_level = "debug",
//	}
//
// On any error the original cfg is returned untouched alongside the error.
func LoadFile(cfg Config, path string) (Config, error) {
	L := glua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	tbl, ok := L.GetGlobal("atm").(*glua.LTable)
	if !ok {
		// Script ran but declared nothing; not an error.
		return cfg, nil
	}

	out := cfg

	getString := func(key string, dst *string) {
		if v := L.GetField(tbl, key); v.Type() == glua.LTString {
			*dst = glua.LVAsString(v)
		}
	}

	getString("text", &out.Text)
	getString("font", &out.Font)
	getString("placeholder", &out.Placeholder)
	getString("color", &out.Color)
	getString("log_level", &out.LogLevel)

	if v := L.GetField(tbl, "whitespace_break"); v.Type() == glua.LTBool {
		out.WhitespaceBreak = glua.LVAsBool(v)
	}

	if v := L.GetField(tbl, "no_resize"); v.Type() == glua.LTBool {
		out.NoResize = glua.LVAsBool(v)
	}

	if v := L.GetField(tbl, "sizing"); v.Type() == glua.LTString {
		sizing, err := ParseSizing(glua.LVAsString(v))
		if err != nil {
			return cfg, err
		}
		out.Sizing = sizing
	}

	if v := L.GetField(tbl, "horizontal_layout"); v.Type() == glua.LTString {
		layout, err := ParseLayout(glua.LVAsString(v))
		if err != nil {
			return cfg, err
		}
		out.HorizontalLayout = layout
	}

	if v := L.GetField(tbl, "vertical_layout"); v.Type() == glua.LTString {
		layout, err := ParseLayout(glua.LVAsString(v))
		if err != nil {
			return cfg, err
		}
		out.VerticalLayout = layout
	}

	return out, nil
}
