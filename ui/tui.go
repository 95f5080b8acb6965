package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/config"
)

// Run starts the terminal UI and blocks until exit.
func Run(cfg config.Config, gen banner.Generator, fonts []string, logger *slog.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, gen, fonts, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
