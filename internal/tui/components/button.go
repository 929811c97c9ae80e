package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/tui/styles"
)

// Button is the full-width call to action at the bottom of each step.
type Button struct {
	Label    string
	Disabled bool
	Focused  bool
	Width    int
}

// Render returns the styled button. A disabled button is dimmed and keeps
// its label so the user can see what is blocked.
func (b Button) Render() string {
	width := b.Width
	if width <= 0 {
		width = 40
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Padding(0, 1)

	switch {
	case b.Disabled:
		style = style.Background(styles.BgSurface).Foreground(styles.TextMuted).Bold(false)
	case b.Focused:
		style = style.Background(styles.AccentPrimary).Foreground(styles.BgDeep)
	default:
		style = style.Background(styles.AccentSecondary).Foreground(styles.BgDeep)
	}

	label := b.Label
	if b.Focused {
		label = "› " + label + " ‹"
	}
	return style.Render(label)
}
