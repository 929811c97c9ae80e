package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dallionking/cashout/internal/catalog"
)

// OptionSelectedMsg is emitted when an option is picked from a Select.
type OptionSelectedMsg struct {
	Field  string
	Option catalog.Option
}

// ValueChangedMsg is emitted when an editable input's text changes.
type ValueChangedMsg struct {
	Field string
	Value string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
