package ui

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcubic/atm/banner"
	"github.com/jcubic/atm/config"
)

var testGen = banner.GeneratorFunc(func(text string, opts banner.Options) (string, error) {
	return "ART:" + text + ":" + opts.Font, nil
})

func testModel(t *testing.T, gen banner.Generator) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Text = "Hello"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewModel(cfg, gen, []string{"standard", "slant"}, logger)
}

// collectMsgs runs a command tree and flattens the produced messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findGenerated(t *testing.T, cmd tea.Cmd) generatedMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if gm, ok := msg.(generatedMsg); ok {
			return gm
		}
	}
	t.Fatal("no generatedMsg produced")
	return generatedMsg{}
}

func resize(m Model, w, h int) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model), cmd
}

func TestModelShowsArtAfterResize(t *testing.T) {
	m := testModel(t, testGen)

	m, cmd := resize(m, 100, 30)
	if cmd == nil {
		t.Fatal("first resize should start generation")
	}

	// Pending: plain text is shown until the generator finishes.
	if view := m.View(); !strings.Contains(view, "Hello") {
		t.Errorf("pending view should contain the input text:\n%s", view)
	}

	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	if view := m.View(); !strings.Contains(view, "ART:Hello:standard") {
		t.Errorf("ready view should contain the generated art:\n%s", view)
	}
}

func TestModelUnchangedWidthDoesNotRegenerate(t *testing.T) {
	m := testModel(t, testGen)

	m, cmd := resize(m, 100, 30)
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	// Same width, different height: the resolved width is unchanged.
	_, cmd = resize(m, 100, 40)
	if cmd != nil {
		t.Error("height-only resize should not restart generation")
	}
}

func TestModelNoResizeFreezesStartupWidth(t *testing.T) {
	cfg := config.Default()
	cfg.Text = "Hello"
	cfg.NoResize = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewModel(cfg, testGen, []string{"standard", "slant"}, logger)

	m, cmd := resize(m, 100, 30)
	if got := findGenerated(t, cmd).req.Options.Width; got != 100 {
		t.Fatalf("startup width = %d, want 100", got)
	}
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	// The terminal narrows: the layout follows, the banner does not.
	m, cmd = resize(m, 60, 30)
	if cmd != nil {
		t.Error("resize should not restart generation when resizing is off")
	}

	// Later requests still resolve against the startup width.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := findGenerated(t, cmd).req.Options.Width; got != 100 {
		t.Errorf("width after resize = %d, want 100", got)
	}
}

func TestModelDiscardsStaleGeneration(t *testing.T) {
	m := testModel(t, testGen)

	m, cmd1 := resize(m, 100, 30)
	stale := findGenerated(t, cmd1)

	// Tab supersedes the first request with a new font.
	next, cmd2 := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	fresh := findGenerated(t, cmd2)

	next, _ = m.Update(fresh)
	m = next.(Model)
	next, _ = m.Update(stale)
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "ART:Hello:slant") {
		t.Errorf("view should show the fresh result:\n%s", view)
	}
	if strings.Contains(view, "ART:Hello:standard") {
		t.Errorf("stale result leaked into the view:\n%s", view)
	}
}

func TestModelFallbackOnFailure(t *testing.T) {
	gen := banner.GeneratorFunc(func(string, banner.Options) (string, error) {
		return "", errors.New("boom")
	})
	m := testModel(t, gen)

	m, cmd := resize(m, 100, 30)
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Hello") {
		t.Errorf("fallback view should contain the input text:\n%s", view)
	}
	if !strings.Contains(view, "fallback") {
		t.Errorf("status bar should report the fallback state:\n%s", view)
	}
}

func TestModelEnterAppliesTypedText(t *testing.T) {
	m := testModel(t, testGen)
	m, cmd := resize(m, 100, 30)
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	for _, r := range "Hi" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	gm := findGenerated(t, cmd)
	if gm.req.Text != "Hi" {
		t.Fatalf("request text = %q, want %q", gm.req.Text, "Hi")
	}

	next, _ = m.Update(gm)
	m = next.(Model)
	if view := m.View(); !strings.Contains(view, "ART:Hi:standard") {
		t.Errorf("view should show art for the typed text:\n%s", view)
	}
}

func TestModelEnterWithEmptyInputIsNoop(t *testing.T) {
	m := testModel(t, testGen)
	m, cmd := resize(m, 100, 30)
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with empty input should not restart generation")
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t, testGen)
	m, _ = resize(m, 100, 30)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestModelSizingCycle(t *testing.T) {
	m := testModel(t, testGen)
	m, cmd := resize(m, 100, 30)
	next, _ := m.Update(findGenerated(t, cmd))
	m = next.(Model)

	// Default sizing is responsive full; the first cycle step moves on.
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	gm := findGenerated(t, cmd)
	if gm.req.Options.Width != 50 {
		t.Errorf("after one cycle width = %d, want 50 (half of 100)", gm.req.Options.Width)
	}
}
