package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

// TabBar renders the conversion-direction tabs.
type TabBar struct {
	Tabs    []catalog.Tab
	Active  catalog.TabID
	Focused bool
	Width   int
}

// Neighbor returns the id of the tab delta positions away from the active
// one, wrapping around. It returns Active when there are no tabs.
func (t TabBar) Neighbor(delta int) catalog.TabID {
	n := len(t.Tabs)
	if n == 0 {
		return t.Active
	}
	idx := 0
	for i, tab := range t.Tabs {
		if tab.ID == t.Active {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	return t.Tabs[idx].ID
}

// Render returns the styled tab bar string.
func (t TabBar) Render() string {
	if len(t.Tabs) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Foreground(styles.AccentPrimary).
		Bold(true).
		Padding(0, 1)
	if t.Focused {
		activeStyle = activeStyle.Underline(true)
	}

	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	var tabs []string
	for _, tab := range t.Tabs {
		if tab.ID == t.Active {
			tabs = append(tabs, activeStyle.Render(tab.Label))
		} else {
			tabs = append(tabs, inactiveStyle.Render(tab.Label))
		}
	}

	content := strings.Join(tabs, "")
	if t.Width > 0 {
		return lipgloss.NewStyle().Width(t.Width).Render(content)
	}
	return content
}
