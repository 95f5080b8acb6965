package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/ui/style"
)

// Status displays the active font, sizing mode, resolved width, and
// generation phase.
type Status struct {
	styles style.Styles
	width  int

	font     string
	sizing   string
	resolved int // -1 means unconstrained
	phase    banner.Phase
}

// NewStatus creates a new status widget.
func NewStatus(styles style.Styles) *Status {
	return &Status{
		styles:   styles,
		resolved: -1,
		phase:    banner.PhasePending,
	}
}

// Set replaces the displayed state. resolved < 0 means no width constraint.
func (s *Status) Set(font, sizing string, resolved int, phase banner.Phase) {
	s.font = font
	s.sizing = sizing
	s.resolved = resolved
	s.phase = phase
}

// SetWidth implements layout.Renderer.
func (s *Status) SetWidth(w int) {
	s.width = w
}

// Height implements layout.Renderer.
func (s *Status) Height() int {
	return 1
}

// View implements layout.Renderer.
func (s *Status) View() string {
	key := s.styles.StatusKey.Render
	val := s.styles.StatusValue.Render

	resolved := "auto"
	if s.resolved >= 0 {
		resolved = fmt.Sprintf("%dcol", s.resolved)
	}

	var phase string
	switch s.phase {
	case banner.PhaseReady:
		phase = s.styles.StatusReady.Render("● ready")
	case banner.PhaseFallback:
		phase = s.styles.StatusFallback.Render("● fallback")
	default:
		phase = s.styles.StatusPending.Render("● pending")
	}

	left := strings.Join([]string{
		key("font:") + val(s.font),
		key("size:") + val(s.sizing),
		key("width:") + val(resolved),
		phase,
	}, "  ")

	right := s.styles.Muted.Render("tab font · ctrl+s size · ctrl+c quit")

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
