// Package banner implements the responsive ASCII banner lifecycle: resolving
// a display width from the terminal width, and the pending/ready/fallback
// state machine around an art generator.
package banner

import "log/slog"

// Phase is the lifecycle phase of the current generation request.
type Phase int

const (
	// PhasePending means generation is in flight.
	PhasePending Phase = iota
	// PhaseReady means generation succeeded and art is available.
	PhaseReady
	// PhaseFallback means generation failed and the plain input text is
	// shown instead.
	PhaseFallback
)

// String returns the phase name for status display.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFallback:
		return "fallback"
	default:
		return "pending"
	}
}

// Generator produces ASCII art for text. Implementations may block; the
// controller never invokes one itself, callers run the request wherever
// suits them and hand the outcome back through Finish.
type Generator interface {
	Render(text string, opts Options) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(text string, opts Options) (string, error)

// Render implements Generator.
func (f GeneratorFunc) Render(text string, opts Options) (string, error) {
	return f(text, opts)
}

// Request identifies one in-flight generation. The token orders requests so
// that a completion arriving after a newer request began is discarded.
type Request struct {
	Text    string
	Options Options

	token uint64
}

// Controller owns the pending/ready/fallback lifecycle around a Generator.
// It is confined to a single goroutine (the UI update loop); completions
// produced elsewhere must be handed to Finish from that goroutine.
type Controller struct {
	gen    Generator
	logger *slog.Logger

	token       uint64
	phase       Phase
	text        string
	result      string
	placeholder string
}

// NewController creates a controller around gen. Generation failures are
// reported through logger; a nil logger falls back to slog.Default.
func NewController(gen Generator, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{gen: gen, logger: logger}
}

// SetPlaceholder sets the text displayed while generation is pending.
// An empty placeholder shows the plain input text instead.
func (c *Controller) SetPlaceholder(s string) {
	c.placeholder = s
}

// Begin resets the controller to pending and returns the request to run.
// Any previously issued request is superseded: its completion, if it ever
// arrives, will be dropped by Finish.
func (c *Controller) Begin(text string, opts Options) Request {
	c.token++
	c.phase = PhasePending
	c.text = text
	c.result = ""
	return Request{Text: text, Options: opts, token: c.token}
}

// Finish applies the outcome of a request. It reports whether the result was
// applied; results from superseded requests are discarded. A failure is
// logged once and degrades to showing the original input text. An empty
// successful result also degrades to the input text.
func (c *Controller) Finish(req Request, art string, err error) bool {
	if req.token != c.token {
		return false
	}
	if err != nil {
		c.logger.Error("banner generation failed",
			"text", req.Text,
			"font", req.Options.Font,
			"error", err)
		c.phase = PhaseFallback
		c.result = req.Text
		return true
	}
	if art == "" {
		art = req.Text
	}
	c.phase = PhaseReady
	c.result = art
	return true
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Display returns the string the UI should show right now: the art when
// ready, the input text after a failure, and the placeholder (or the input
// text when no placeholder is set) while pending.
func (c *Controller) Display() string {
	switch c.phase {
	case PhaseReady, PhaseFallback:
		return c.result
	default:
		if c.placeholder != "" {
			return c.placeholder
		}
		return c.text
	}
}

// GenerateSync renders text immediately, bypassing the pending phase.
// On failure the error is logged once and the input text is returned
// unchanged; errors are never propagated.
func (c *Controller) GenerateSync(text string, opts Options) string {
	art, err := c.gen.Render(text, opts)
	if err != nil {
		c.logger.Error("banner generation failed",
			"text", text,
			"font", opts.Font,
			"error", err)
		return text
	}
	if art == "" {
		return text
	}
	return art
}
