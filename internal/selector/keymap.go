package selector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is an abstract action produced from a key press
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandConfirm
	CommandCancel
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveUp:
		return "move-up"
	case CommandMoveDown:
		return "move-down"
	case CommandConfirm:
		return "confirm"
	case CommandCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// KeyMap defines the key bindings of the selector
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings
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
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// Resolve maps a key message to a command. Unbound keys resolve to CommandNone.
func (km KeyMap) Resolve(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.Up):
		return CommandMoveUp
	case key.Matches(msg, km.Down):
		return CommandMoveDown
	case key.Matches(msg, km.Confirm):
		return CommandConfirm
	case key.Matches(msg, km.Cancel):
		return CommandCancel
	default:
		return CommandNone
	}
}

// ShortHelp returns the bindings shown in compact help
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Confirm, km.Cancel}
}
