package models

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the checkout bindings. Help text feeds the footer.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Enter   key.Binding
	Back    key.Binding
	TabLeft key.Binding
	TabNext key.Binding
	Explain key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		TabLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←→", "switch tab"),
		),
		TabNext: key.NewBinding(
			key.WithKeys("right"),
		),
		Explain: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "explain"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
