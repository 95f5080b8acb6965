// Package layout computes the vertical split between the banner area and
// the widgets docked below it.
package layout

import "strings"

// Renderer is the minimal interface for layout-aware components.
// Used by the layout engine to calculate sizes and render output.
type Renderer interface {
	SetWidth(w int)
	Height() int
	View() string
}

// Dock stacks renderers vertically at a shared width.
type Dock struct {
	Renderers []Renderer
}

// Height returns the total height of all renderers in the dock.
func (d *Dock) Height() int {
	h := 0
	for _, r := range d.Renderers {
		h += r.Height()
	}
	return h
}

// SetWidth sets the width on all renderers in the dock.
func (d *Dock) SetWidth(w int) {
	for _, r := range d.Renderers {
		r.SetWidth(w)
	}
}

// View returns the rendered view of all visible renderers concatenated.
func (d *Dock) View() string {
	var parts []string
	for _, r := range d.Renderers {
		if r.Height() > 0 {
			parts = append(parts, r.View())
		}
	}
	return strings.Join(parts, "\n")
}

// Engine tracks the window size and hands whatever the dock does not claim
// to the banner area.
type Engine struct {
	width  int
	height int
}

// NewEngine creates a new layout engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetSize sets the total available size.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *Engine) Width() int {
	return e.width
}

// Calculate sets the width on the dock and returns the banner area height.
func (e *Engine) Calculate(bottom *Dock) int {
	bottom.SetWidth(e.width)

	bannerHeight := e.height - bottom.Height()
	if bannerHeight < 1 {
		bannerHeight = 1
	}
	return bannerHeight
}
