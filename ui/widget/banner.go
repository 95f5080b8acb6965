package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/ui/style"
)

// Banner fills the area above the dock with the current art, the pending
// placeholder, or the fallback text, centered both ways.
type Banner struct {
	spinner spinner.Model
	styles  style.Styles

	content string
	phase   banner.Phase
	width   int
	height  int
}

// NewBanner creates the banner area widget.
func NewBanner(styles style.Styles) *Banner {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Placeholder

	return &Banner{
		spinner: sp,
		styles:  styles,
		phase:   banner.PhasePending,
	}
}

// Tick returns the command that drives the pending spinner.
func (b *Banner) Tick() tea.Cmd {
	return b.spinner.Tick
}

// UpdateSpinner advances the spinner animation.
func (b *Banner) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return cmd
}

// SetContent replaces the displayed text and phase.
func (b *Banner) SetContent(text string, phase banner.Phase) {
	b.content = text
	b.phase = phase
}

// Phase returns the currently displayed phase.
func (b *Banner) Phase() banner.Phase {
	return b.phase
}

// SetSize sets the area the banner may occupy.
func (b *Banner) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// View renders the banner centered in its area.
func (b *Banner) View() string {
	var body string
	switch b.phase {
	case banner.PhaseReady:
		body = b.styles.Banner.Render(b.content)
	case banner.PhaseFallback:
		body = b.styles.Fallback.Render(b.content)
	default:
		body = b.spinner.View() + " " + b.styles.Placeholder.Render(b.content)
	}
	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, body)
}
