package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the browser.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	DrillIn    key.Binding
	DrillOut   key.Binding
	Schema     key.Binding
	Highlight  key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		DrillIn: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "table view"),
		),
		DrillOut: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "main view"),
		),
		Schema: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "toggle schema"),
		),
		Highlight: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("⇧S", "toggle column select"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("⇧←/H", "previous column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("⇧→/L", "next column"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
