package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

// CurrencyInput is the "You pay" / "You receive" box: an amount next to a
// currency badge. The editable variant only accepts partial decimal input.
type CurrencyInput struct {
	Field    string
	Label    string
	Badge    string
	Error    string
	ReadOnly bool
	Width    int

	input textinput.Model
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = checkout.ZeroAmount
	ti.CharLimit = 24
	ti.TextStyle = styles.Amount
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	return ti
}

// NewPayInput creates the editable pay-amount box.
func NewPayInput(field, value string) CurrencyInput {
	ti := newAmountInput()
	ti.SetValue(value)
	return CurrencyInput{Field: field, Label: "You pay", Width: 40, input: ti}
}

// NewReceiveInput creates the read-only receive box.
func NewReceiveInput(value string) CurrencyInput {
	ti := newAmountInput()
	ti.SetValue(value)
	return CurrencyInput{Label: "You receive", ReadOnly: true, Width: 40, input: ti}
}

// Value returns the current amount text.
func (c CurrencyInput) Value() string { return c.input.Value() }

// SetValue replaces the amount text without emitting a change.
func (c *CurrencyInput) SetValue(s string) { c.input.SetValue(s) }

// Focus starts the cursor on editable inputs.
func (c *CurrencyInput) Focus() tea.Cmd {
	if c.ReadOnly {
		return nil
	}
	return c.input.Focus()
}

// Blur stops the cursor.
func (c *CurrencyInput) Blur() { c.input.Blur() }

// Focused reports whether the input has focus.
func (c CurrencyInput) Focused() bool { return c.input.Focused() }

// Update applies a keystroke. Edits that would leave text that is not a
// partial decimal are dropped; accepted edits emit ValueChangedMsg.
func (c CurrencyInput) Update(msg tea.Msg) (CurrencyInput, tea.Cmd) {
	if c.ReadOnly || !c.input.Focused() {
		return c, nil
	}

	before := c.input.Value()
	next, cmd := c.input.Update(msg)
	if !checkout.IsAmountInput(next.Value()) {
		return c, nil
	}
	c.input = next
	if c.input.Value() == before {
		return c, cmd
	}
	return c, tea.Batch(cmd, emit(ValueChangedMsg{Field: c.Field, Value: c.input.Value()}))
}

// View renders the label, the amount row and the error line.
func (c CurrencyInput) View() string {
	var b strings.Builder
	b.WriteString(styles.Label.Render(c.Label))
	b.WriteString("\n")

	amount := c.input.View()
	if c.ReadOnly {
		value := c.input.Value()
		if value == "" {
			value = checkout.ZeroAmount
		}
		amount = styles.Amount.Render(value)
	}

	badgeWidth := lipgloss.Width(c.Badge)
	width := c.Width
	if width < badgeWidth+8 {
		width = badgeWidth + 8
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(width-badgeWidth-2).Render(amount),
		c.Badge,
	)

	frame := styles.Field
	switch {
	case c.input.Focused():
		frame = styles.FieldFocused
	case c.Error != "":
		frame = styles.FieldError
	}
	b.WriteString(frame.Width(width).Render(row))

	if c.Error != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(c.Error))
	}
	return b.String()
}
