package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo's key bindings.
type KeyMap struct {
	Next   key.Binding
	Press  key.Binding
	Browse key.Binding
	Clear  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Browse: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "browse"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c/x", "remove"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close dialog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Browse, k.Clear, k.Next, k.Press, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Browse, k.Clear},
		{k.Next, k.Press},
		{k.Cancel, k.Quit},
	}
}
