package viewer

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Reload     key.Binding
	CycleTheme key.Binding

	// Display
	ToggleReverse  key.Binding
	ToggleDatetime key.Binding
	ToggleOrphans  key.Binding
	ToggleNumbers  key.Binding

	// Filters
	ToggleCategory key.Binding
	EnableAll      key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reload log"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		ToggleReverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Newest first"),
		),
		ToggleDatetime: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Datetimes"),
		),
		ToggleOrphans: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Orphaned traces"),
		),
		ToggleNumbers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Line numbers"),
		),
		ToggleCategory: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "Toggle category"),
		),
		EnableAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Show all"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Bottom"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleCategory, k.ToggleReverse, k.ToggleDatetime, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleCategory, k.EnableAll, k.ToggleOrphans},
		{k.ToggleReverse, k.ToggleDatetime, k.ToggleNumbers, k.CycleTheme},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Reload, k.Help, k.Quit},
	}
}
