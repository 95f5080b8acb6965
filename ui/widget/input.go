package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcubic/atm/ui/style"
)

// Input is the text entry line for retyping the banner text.
type Input struct {
	textinput textinput.Model
}

// NewInput creates a focused input widget.
func NewInput(styles style.Styles) *Input {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.Placeholder = "type banner text, enter to apply"
	ti.CharLimit = 0
	ti.Width = 80
	ti.Focus()

	return &Input{textinput: ti}
}

// Update forwards a message to the underlying text field.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return cmd
}

// Value returns the current input text.
func (i *Input) Value() string {
	return i.textinput.Value()
}

// Reset clears the input.
func (i *Input) Reset() {
	i.textinput.SetValue("")
}

// SetWidth implements layout.Renderer.
func (i *Input) SetWidth(w int) {
	w -= 2 // Account for prompt
	if w < 1 {
		w = 1
	}
	i.textinput.Width = w
}

// Height implements layout.Renderer.
func (i *Input) Height() int {
	return 1
}

// View implements layout.Renderer.
func (i *Input) View() string {
	return i.textinput.View()
}
