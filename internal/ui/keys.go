package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// searchKeyMap is active while the search input has focus
type searchKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Clear, k.Help, k.Quit}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// viewerKeyMap is active while the viewer is open
type viewerKeyMap struct {
	Close    key.Binding
	Copy     key.Binding
	Download key.Binding
	Pager    key.Binding
	Scroll   key.Binding
	Quit     key.Binding
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Copy, k.Download, k.Pager, k.Scroll, k.Quit}
}

func (k viewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var searchKeys = searchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/ctrl+p", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n", "tab"),
		key.WithHelp("↓/ctrl+n", "next"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

var viewerKeys = viewerKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	Download: key.NewBinding(
		key.WithKeys("d", "s"),
		key.WithHelp("d", "download"),
	),
	Pager: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pager"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "j", "k", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
