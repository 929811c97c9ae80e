package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/tui/styles"
)

// Header renders the top line of the checkout card: the wordmark on the
// first step, a back hint plus the step title afterwards.
type Header struct {
	Title    string
	BackHint bool
	Width    int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 40
	}

	var content string
	if h.BackHint {
		back := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("← esc")
		title := styles.Title.Render(h.Title)
		gap := width - lipgloss.Width(back) - lipgloss.Width(title)
		if gap < 2 {
			gap = 2
		}
		// Title is centered in the space left after the back hint.
		left := gap / 2
		content = back + lipgloss.NewStyle().Width(left).Render("") + title
	} else {
		logo := lipgloss.NewStyle().
			Foreground(styles.AccentPrimary).
			Bold(true).
			Render(styles.Logo)
		content = logo
		if h.Title != "" {
			content += styles.Dim("  │  ") + styles.Subtitle.Render(h.Title)
		}
	}

	return lipgloss.NewStyle().Width(width).Render(content)
}
