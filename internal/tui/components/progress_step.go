package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/tui/styles"
)

// ProgressStep shows where the user is in the checkout.
type ProgressStep struct {
	Steps   []string // step labels
	Current int      // 0-indexed current step
}

// Render returns the styled indicator, e.g. "● Payment ── ○ Recipient details".
// Completed steps are green, the current one mint, later ones muted.
func (p ProgressStep) Render() string {
	if len(p.Steps) == 0 {
		return ""
	}

	var parts []string
	for i, label := range p.Steps {
		var style lipgloss.Style
		dot := "●"
		switch {
		case i < p.Current:
			style = lipgloss.NewStyle().Foreground(styles.StatusOK)
			dot = "✓"
		case i == p.Current:
			style = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(styles.TextMuted)
			dot = "○"
		}
		parts = append(parts, style.Render(dot+" "+label))
	}

	line := strings.Join(parts, styles.Dim(" ── "))
	counter := styles.Dim(fmt.Sprintf("  %d/%d", p.Current+1, len(p.Steps)))
	return line + counter
}
