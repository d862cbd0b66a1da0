package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the TUI application.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Pause     key.Binding
	Charts    key.Binding
	Theme     key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Pause, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel},
		{k.Pause, k.Charts, k.Theme},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	NextPanel: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next panel")),
	PrevPanel: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev panel")),
	Pause:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
	Charts:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "charts/sparklines")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
}

// KeyEntry describes one binding for documentation.
type KeyEntry struct {
	Keys        []string
	Description string
}

// KeyHelp lists every binding in FullHelp order.
func KeyHelp() []KeyEntry {
	var out []KeyEntry
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			out = append(out, KeyEntry{Keys: b.Keys(), Description: b.Help().Desc})
		}
	}
	return out
}
