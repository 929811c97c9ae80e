package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/tui/styles"
)

// ConfirmDialog is a modal yes/no prompt, used before leaving a checkout
// that has unsaved input.
type ConfirmDialog struct {
	Title     string
	Message   string
	Confirmed bool
	Done      bool
	selected  int // 0 = Yes, 1 = No
}

// NewConfirmDialog creates a dialog with "No" preselected.
func NewConfirmDialog(title, message string) ConfirmDialog {
	return ConfirmDialog{
		Title:    title,
		Message:  message,
		selected: 1,
	}
}

// Update handles y/n, arrows and enter. Any answer sets Done.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		d.Confirmed, d.Done = true, true
	case "n", "N", "esc":
		d.Confirmed, d.Done = false, true
	case "ctrl+c":
		// A second interrupt while asking means yes.
		d.Confirmed, d.Done = true, true
	case "enter":
		d.Confirmed = d.selected == 0
		d.Done = true
	case "left", "h", "tab":
		d.selected = 0
	case "right", "l", "shift+tab":
		d.selected = 1
	}
	return d, nil
}

// View returns the styled dialog.
func (d ConfirmDialog) View() string {
	title := lipgloss.NewStyle().
		Foreground(styles.StatusWarn).
		Bold(true).
		Render(d.Title)
	message := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(d.Message)

	selectedStyle := lipgloss.NewStyle().
		Background(styles.AccentPrimary).
		Foreground(styles.BgDeep).
		Bold(true).
		Padding(0, 1)
	unselectedStyle := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	yesBtn, noBtn := unselectedStyle.Render("Yes"), selectedStyle.Render("No")
	if d.selected == 0 {
		yesBtn, noBtn = selectedStyle.Render("Yes"), unselectedStyle.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	hint := styles.Dim("y/n or ←→ + enter")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		message,
		"",
		buttons,
		"",
		hint,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusWarn).
		Padding(1, 2).
		Width(44).
		Align(lipgloss.Center).
		Render(content)
}
