package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab key.Binding
	Start   key.Binding
	End     key.Binding
	Snooze  key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start fast"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end fast"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "snooze"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete entry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit settings"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
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
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.NextTab, m.keys.Start, m.keys.End, m.keys.Snooze, m.keys.Quit}
}

// FullHelp implements help.KeyMap
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextTab, m.keys.Start, m.keys.End, m.keys.Snooze},
		{m.keys.Up, m.keys.Down, m.keys.Delete, m.keys.Edit},
		{m.keys.Help, m.keys.Quit},
	}
}
