package widget

import (
	"strings"

	"github.com/jcubic/atm/ui/style"
)

// Separator renders a horizontal line.
type Separator struct {
	styles style.Styles
	width  int
}

// NewSeparator creates a new separator widget.
func NewSeparator(styles style.Styles) *Separator {
	return &Separator{styles: styles}
}

// SetWidth implements layout.Renderer.
func (s *Separator) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	s.width = w
}

// Height implements layout.Renderer.
func (s *Separator) Height() int {
	return 1
}

// View implements layout.Renderer.
func (s *Separator) View() string {
	return s.styles.Separator.Render(strings.Repeat("─", s.width))
}
