package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Add       key.Binding
	History   key.Binding
	Quit      key.Binding
	Toggle    key.Binding
	Confirm   key.Binding
	Back      key.Binding
	UpDown    key.Binding
	Backspace key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add workout")),
		History:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch exercise")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete")),
	}
}

// Per-screen footer help, in display order.

func (k keyMap) mainHelp() []key.Binding {
	return []key.Binding{k.Add, k.History, k.Quit}
}

func (k keyMap) addHelp() []key.Binding {
	return []key.Binding{
		k.Toggle,
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0-9", "count")),
		k.Confirm,
		k.Back,
	}
}

func (k keyMap) historyHelp() []key.Binding {
	return []key.Binding{
		k.UpDown,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		k.Back,
	}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Back}
}
