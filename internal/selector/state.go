// Package selector implements the interactive single-choice key list:
// the navigation state, the key bindings, the render/read loop and the
// terminal backends it runs on.
package selector

import (
	"slices"

	"github.com/riordanpawley/signingkey/internal/domain"
)

// Phase is the lifecycle position of a selection session
type Phase int

const (
	PhaseActive Phase = iota
	PhaseConfirmed
	PhaseCancelled
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further commands are accepted
func (p Phase) Terminal() bool {
	return p == PhaseConfirmed || p == PhaseCancelled
}

// State tracks the entries of one session, the entry matching the
// configured key and the cursor position.
//
// Entries never change after construction; only the highlight moves.
type State struct {
	entries   []domain.KeyRecord
	current   int // -1 when no entry matches the configured key
	highlight int
}

// NewState builds the state for a session. currentID is the configured
// key id, or "" when none is configured. When several entries share
// currentID the first one is marked current.
func NewState(entries []domain.KeyRecord, currentID string) (*State, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyInput
	}

	current := -1
	if currentID != "" {
		current = slices.IndexFunc(entries, func(k domain.KeyRecord) bool {
			return k.ID == currentID
		})
	}

	highlight := 0
	if current >= 0 {
		highlight = current
	}

	return &State{
		entries:   slices.Clone(entries),
		current:   current,
		highlight: highlight,
	}, nil
}

// Len returns the number of entries
func (s *State) Len() int {
	return len(s.entries)
}

// Entry returns the entry at index i
func (s *State) Entry(i int) domain.KeyRecord {
	return s.entries[i]
}

// MoveUp moves the highlight one entry up, wrapping to the last entry
func (s *State) MoveUp() {
	if s.highlight == 0 {
		s.highlight = len(s.entries) - 1
		return
	}
	s.highlight--
}

// MoveDown moves the highlight one entry down, wrapping to the first entry
func (s *State) MoveDown() {
	if s.highlight >= len(s.entries)-1 {
		s.highlight = 0
		return
	}
	s.highlight++
}

// HighlightIndex returns the cursor position
func (s *State) HighlightIndex() int {
	return s.highlight
}

// Highlighted returns the entry under the cursor
func (s *State) Highlighted() domain.KeyRecord {
	return s.entries[s.highlight]
}

// CurrentIndex returns the index of the configured entry, if any
func (s *State) CurrentIndex() (int, bool) {
	return s.current, s.current >= 0
}

// IsCurrent reports whether the entry at index is the configured one
func (s *State) IsCurrent(index int) bool {
	return s.current >= 0 && s.current == index
}

// Apply executes one command and returns the phase it leads to.
// Navigation keeps the session active; CommandNone is a no-op.
func (s *State) Apply(cmd Command) Phase {
	switch cmd {
	case CommandMoveUp:
		s.MoveUp()
	case CommandMoveDown:
		s.MoveDown()
	case CommandConfirm:
		return PhaseConfirmed
	case CommandCancel:
		return PhaseCancelled
	}
	return PhaseActive
}
