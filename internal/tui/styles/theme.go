package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logo is the wordmark shown in the checkout header and version output.
const Logo = "◆ cashout"

// ---------------------------------------------------------------------------
// Card and field frames
// ---------------------------------------------------------------------------

// Card frames the whole checkout: rounded mint border like the web widget.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(AccentPrimary).
	Padding(1, 2)

// Field is the frame drawn around an idle input or select.
var Field = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(BorderNormal).
	Padding(0, 1)

// FieldFocused is Field with the mint focus ring.
var FieldFocused = Field.BorderForeground(BorderFocused)

// FieldError is Field with a red border for fields showing an error.
var FieldError = Field.BorderForeground(StatusError)

// Dropdown frames an open select list.
var Dropdown = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(AccentSecondary).
	Padding(0, 1)

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextSecondary text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// Amount is the large figure inside a currency input.
var Amount = lipgloss.NewStyle().
	Foreground(AccentSecondary).
	Bold(true)

// ErrorText is the inline validation message under a field.
var ErrorText = lipgloss.NewStyle().
	Foreground(StatusError).
	PaddingLeft(1)

// TableHeader is bold, underlined, TextSecondary for column headings.
var TableHeader = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Bold(true).
	Underline(true)

// ---------------------------------------------------------------------------
// Badge helpers
// ---------------------------------------------------------------------------

// Badge renders a pill such as "ETH ▾" used for token and currency selectors.
func Badge(text string, open bool) string {
	arrow := "▾"
	if open {
		arrow = "▴"
	}
	return lipgloss.NewStyle().
		Background(BgSurface).
		Foreground(TextPrimary).
		Bold(true).
		Padding(0, 1).
		Render(text + " " + arrow)
}

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width using the ─ character
// rendered in BorderNormal color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat("─", width)
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(line)
}
