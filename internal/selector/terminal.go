package selector

import tea "github.com/charmbracelet/bubbletea"

// EventKind distinguishes presses from the other variants of a key event
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRepeat
	KeyRelease
)

// Event is one discrete input event read from a Terminal
type Event struct {
	Key  tea.KeyMsg
	Kind EventKind
}

// Press wraps a key message as a press event
func Press(msg tea.KeyMsg) Event {
	return Event{Key: msg, Kind: KeyPress}
}

// Terminal is the surface the selector renders to and reads from.
//
// Render draws a block of lines in place, replacing the block drawn by
// the previous call. Clear erases the block. ReadEvent blocks until the
// next input event arrives.
type Terminal interface {
	EnterRaw() error
	LeaveRaw() error
	Render(lines []string) error
	ReadEvent() (Event, error)
	Clear() error
}
