// Package termsize detects the terminal dimensions for one-shot rendering,
// where no TUI event loop is around to deliver resize events.
package termsize

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Default dimensions when nothing can be detected.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Detect returns the current terminal dimensions. It tries the stdout TTY
// first, then the COLUMNS/LINES environment variables, then the defaults.
func Detect() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err == nil && w > 0 && h > 0 {
		return w, h
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}
