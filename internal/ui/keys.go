package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"swipetabs/internal/gesture"
)

// KeyMap holds the application key bindings. Swipe keys are consumed by
// the pager widget; the rest are handled by the Model.
type KeyMap struct {
	Swipe gesture.KeyMap
	Next  key.Binding
	Prev  key.Binding
	Jump  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Swipe: gesture.DefaultKeyMap(),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Swipe.Prev, k.Swipe.Next, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Swipe.Prev, k.Swipe.Next},
		{k.Next, k.Prev, k.Jump},
		{k.Help, k.Quit},
	}
}
