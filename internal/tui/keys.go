package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/listo/internal/config"
)

// keyMap holds the TUI bindings built from the configured key mappings.
// It satisfies help.KeyMap so the footer and help screen stay in sync with config.
type keyMap struct {
	Add            key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Toggle         key.Binding
	ClearCompleted key.Binding
	NextFilter     key.Binding
	PrevFilter     key.Binding
	Up             key.Binding
	Down           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// normalizeKey maps config spellings onto the names reported by key presses
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func binding(desc string, keys ...string) key.Binding {
	for i, k := range keys {
		keys[i] = normalizeKey(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:            binding("add", km.AddTask),
		Edit:           binding("edit", km.EditTask),
		Delete:         binding("delete", km.DeleteTask),
		Toggle:         binding("toggle", km.ToggleTask),
		ClearCompleted: binding("clear done", km.ClearCompleted),
		NextFilter:     binding("next filter", km.NextFilter, "right"),
		PrevFilter:     binding("prev filter", km.PrevFilter, "left"),
		Up:             binding("up", km.PrevTask, "up"),
		Down:           binding("down", km.NextTask, "down"),
		Help:           binding("help", km.ShowHelp),
		Quit:           binding("quit", km.Quit, "ctrl+c"),
	}
}

// ShortHelp is the one-line footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.NextFilter, k.Help, k.Quit}
}

// FullHelp is the help screen, one column per group
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.Toggle, k.ClearCompleted},
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Help, k.Quit},
	}
}
