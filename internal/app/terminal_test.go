package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/signingkey/internal/selector"
)

// scriptTerminal feeds named keys to a selector
type scriptTerminal struct {
	keys []string
	raw  bool
}

func (s *scriptTerminal) EnterRaw() error {
	s.raw = true
	return nil
}

func (s *scriptTerminal) LeaveRaw() error {
	s.raw = false
	return nil
}

func (s *scriptTerminal) Render(_ []string) error { return nil }
func (s *scriptTerminal) Clear() error            { return nil }

func (s *scriptTerminal) ReadEvent() (selector.Event, error) {
	if len(s.keys) == 0 {
		return selector.Event{}, io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]

	switch k {
	case "enter":
		return selector.Press(tea.KeyMsg{Type: tea.KeyEnter}), nil
	default:
		return selector.Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}), nil
	}
}
