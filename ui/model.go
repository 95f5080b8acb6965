package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/config"
	"github.com/jcubic/atm/ui/layout"
	"github.com/jcubic/atm/ui/style"
	"github.com/jcubic/atm/ui/widget"
)

// sizingPresets are cycled with ctrl+s.
var sizingPresets = []banner.Sizing{
	banner.Responsive(),
	banner.ResponsiveFraction(0.5),
	banner.ResponsiveFraction(2.0 / 3.0),
	banner.Fixed(80),
	banner.Unconstrained(),
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Layout
	engine     *layout.Engine
	bannerArea *widget.Banner
	input      *widget.Input
	status     *widget.Status
	separator  *widget.Separator
	styles     style.Styles

	// Generation
	ctrl *banner.Controller
	gen  banner.Generator
	cfg  config.Config

	// State
	text    string
	fonts   []string
	fontIdx int
	sizing  banner.Sizing

	sizingIdx int

	// resolveWidth is the terminal width the sizing directive resolves
	// against. With cfg.NoResize it stays at the value seen on the first
	// size message; the layout still follows the terminal.
	resolveWidth int
	initialized  bool
	quitting     bool
}

// NewModel creates the TUI model. fonts must be non-empty; it is the cycle
// order for the tab key.
func NewModel(cfg config.Config, gen banner.Generator, fonts []string, logger *slog.Logger) Model {
	styles := style.Tinted(cfg.Color)

	ctrl := banner.NewController(gen, logger)
	ctrl.SetPlaceholder(cfg.Placeholder)

	fontIdx := -1
	for i, f := range fonts {
		if f == cfg.Font {
			fontIdx = i
			break
		}
	}
	if fontIdx < 0 {
		fonts = append([]string{cfg.Font}, fonts...)
		fontIdx = 0
	}

	// Start the sizing cycle after the configured directive when it is one
	// of the presets.
	sizingIdx := 0
	for i, p := range sizingPresets {
		if p == cfg.Sizing {
			sizingIdx = i + 1
			break
		}
	}

	return Model{
		engine:     layout.NewEngine(),
		bannerArea: widget.NewBanner(styles),
		input:      widget.NewInput(styles),
		status:     widget.NewStatus(styles),
		separator:  widget.NewSeparator(styles),
		styles:     styles,
		ctrl:       ctrl,
		gen:        gen,
		cfg:        cfg,
		text:       cfg.Text,
		fonts:      fonts,
		fontIdx:    fontIdx,
		sizing:     cfg.Sizing,
		sizingIdx:  sizingIdx,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bannerArea.Tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		prevW, prevOK := m.sizing.Resolve(m.resolveWidth)
		first := !m.initialized

		m.engine.SetSize(msg.Width, msg.Height)
		if first || !m.cfg.NoResize {
			m.resolveWidth = msg.Width
		}
		m.initialized = true

		// Only regenerate when the resolved width actually changed;
		// stale completions are discarded by token either way.
		if w, ok := m.sizing.Resolve(m.resolveWidth); first || w != prevW || ok != prevOK {
			return m, m.regenerate()
		}
		return m, nil

	case generatedMsg:
		if m.ctrl.Finish(msg.req, msg.art, msg.err) {
			m.syncWidgets()
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Phase() == banner.PhasePending {
			return m, m.bannerArea.UpdateSpinner(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.text = text
		m.input.Reset()
		return m, m.regenerate()

	case tea.KeyTab:
		m.fontIdx = (m.fontIdx + 1) % len(m.fonts)
		return m, m.regenerate()

	case tea.KeyCtrlS:
		m.sizing = sizingPresets[m.sizingIdx%len(sizingPresets)]
		m.sizingIdx++
		return m, m.regenerate()
	}

	return m, m.input.Update(msg)
}

// options builds the generation options for the current font and resolved
// width.
func (m Model) options() banner.Options {
	cfg := m.cfg
	cfg.Font = m.fonts[m.fontIdx]

	w, ok := m.sizing.Resolve(m.resolveWidth)
	if !ok {
		w = 0
	}
	return cfg.Options(w)
}

// regenerate begins a new request and returns the command that runs the
// generator off the update loop.
func (m *Model) regenerate() tea.Cmd {
	req := m.ctrl.Begin(m.text, m.options())
	m.syncWidgets()

	gen := m.gen
	return tea.Batch(
		func() tea.Msg {
			art, err := gen.Render(req.Text, req.Options)
			return generatedMsg{req: req, art: art, err: err}
		},
		m.bannerArea.Tick(),
	)
}

// syncWidgets pushes controller state into the banner area and status bar.
func (m *Model) syncWidgets() {
	m.bannerArea.SetContent(m.ctrl.Display(), m.ctrl.Phase())

	resolved := -1
	if w, ok := m.sizing.Resolve(m.resolveWidth); ok {
		resolved = w
	}
	m.status.Set(m.fonts[m.fontIdx], m.sizing.String(), resolved, m.ctrl.Phase())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	dock := &layout.Dock{Renderers: []layout.Renderer{
		m.separator,
		m.input,
		m.status,
	}}

	bannerHeight := m.engine.Calculate(dock)
	m.bannerArea.SetSize(m.engine.Width(), bannerHeight)

	return m.bannerArea.View() + "\n" + dock.View()
}
