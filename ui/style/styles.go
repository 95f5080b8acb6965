package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Banner area
	Banner      lipgloss.Style
	Fallback    lipgloss.Style
	Placeholder lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Status bar
	StatusKey      lipgloss.Style
	StatusValue    lipgloss.Style
	StatusPending  lipgloss.Style
	StatusReady    lipgloss.Style
	StatusFallback lipgloss.Style

	// Misc
	Separator lipgloss.Style
	Muted     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		// Banner - bold color, everything else stays subtle
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),
		Fallback: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		StatusKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		StatusValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow
		StatusReady: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		StatusFallback: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Tinted returns the default styles with the banner foreground replaced.
// An empty color keeps the default.
func Tinted(color string) Styles {
	s := DefaultStyles()
	if color != "" {
		s.Banner = s.Banner.Foreground(lipgloss.Color(color))
	}
	return s
}
