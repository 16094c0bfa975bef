package listview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a list Model.
type KeyMap struct {
	Next,
	Previous,
	PageDown,
	PageUp,
	First,
	Last,
	Deselect,
	Help,
	Quit key.Binding
}

// DefaultKeyMap returns bindings for a vertical list.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("f/pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("b/pgup", "page up"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
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

// HorizontalKeyMap returns DefaultKeyMap with left/right added for stepping.
func HorizontalKeyMap() KeyMap {
	k := DefaultKeyMap()
	k.Next = key.NewBinding(
		key.WithKeys("right", "l", "down", "j"),
		key.WithHelp("→/l", "next"),
	)
	k.Previous = key.NewBinding(
		key.WithKeys("left", "h", "up", "k"),
		key.WithHelp("←/h", "previous"),
	)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.PageDown, k.PageUp},
		{k.First, k.Last, k.Deselect},
		{k.Help, k.Quit},
	}
}
