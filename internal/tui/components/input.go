package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/tui/styles"
)

// Input is a labeled single-line text field with an error line.
type Input struct {
	Field    string
	Label    string
	Error    string
	Disabled bool
	Width    int

	input textinput.Model
}

// NewInput creates an editable text field.
func NewInput(field, label, placeholder string) Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 34
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	return Input{Field: field, Label: label, Width: 40, input: ti}
}

// NewDisabledInput creates a read-only field showing value.
func NewDisabledInput(label, value string) Input {
	in := NewInput("", label, "")
	in.input.SetValue(value)
	in.Disabled = true
	return in
}

// Value returns the field text.
func (i Input) Value() string { return i.input.Value() }

// SetValue replaces the field text without emitting a change.
func (i *Input) SetValue(s string) { i.input.SetValue(s) }

// Focus gives the field the cursor. Disabled fields never take focus.
func (i *Input) Focus() tea.Cmd {
	if i.Disabled {
		return nil
	}
	return i.input.Focus()
}

// Blur removes the cursor.
func (i *Input) Blur() { i.input.Blur() }

// Focused reports whether the field has focus.
func (i Input) Focused() bool { return i.input.Focused() }

// Update forwards keys to the text field and emits ValueChangedMsg on edits.
func (i Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	if i.Disabled || !i.input.Focused() {
		return i, nil
	}
	before := i.input.Value()
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	if i.input.Value() == before {
		return i, cmd
	}
	return i, tea.Batch(cmd, emit(ValueChangedMsg{Field: i.Field, Value: i.input.Value()}))
}

// View renders the label, the framed field and the error line.
func (i Input) View() string {
	var b strings.Builder
	b.WriteString(styles.Label.Render(i.Label))
	b.WriteString("\n")

	body := i.input.View()
	frame := styles.Field
	switch {
	case i.Disabled:
		body = lipgloss.NewStyle().Foreground(styles.TextMuted).Render(i.input.Value())
		frame = styles.Field.BorderForeground(styles.BgSurface)
	case i.input.Focused():
		frame = styles.FieldFocused
	case i.Error != "":
		frame = styles.FieldError
	}
	width := i.Width
	if width < 12 {
		width = 12
	}
	b.WriteString(frame.Width(width).Render(body))

	if i.Error != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(i.Error))
	}
	return b.String()
}
