package selector

import (
	"log/slog"

	"github.com/riordanpawley/signingkey/internal/domain"
)

// Result is the outcome of a selection session
type Result struct {
	id        string
	cancelled bool
}

// Selected returns a result carrying the chosen key id
func Selected(id string) Result {
	return Result{id: id}
}

// Cancelled returns a result signalling that the user backed out
func Cancelled() Result {
	return Result{cancelled: true}
}

// ID returns the chosen key id; ok is false when the session was cancelled
func (r Result) ID() (id string, ok bool) {
	return r.id, !r.cancelled
}

// Cancelled reports whether the session ended without a choice
func (r Result) Cancelled() bool {
	return r.cancelled
}

// Selector runs the render/read loop on a Terminal
type Selector struct {
	term   Terminal
	keys   KeyMap
	view   *View
	logger *slog.Logger
}

// Option configures a Selector
type Option func(*Selector)

// WithKeyMap overrides the default key bindings
func WithKeyMap(km KeyMap) Option {
	return func(s *Selector) {
		s.keys = km
	}
}

// WithView overrides the default view
func WithView(v *View) Option {
	return func(s *Selector) {
		s.view = v
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// New creates a Selector drawing on term
func New(term Terminal, opts ...Option) *Selector {
	s := &Selector{
		term: term,
		keys: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.view == nil {
		s.view = NewView(nil, "", "")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Select lets the user pick one of entries. currentID marks the configured
// entry and positions the initial highlight on it.
//
// Empty entries fail with domain.ErrEmptyInput before the terminal is
// touched. Otherwise raw mode is held for the whole loop; the drawn block
// is cleared and raw mode released exactly once however the loop exits.
// Terminal failures are returned as *domain.TerminalError.
func (s *Selector) Select(entries []domain.KeyRecord, currentID string) (res Result, err error) {
	st, err := NewState(entries, currentID)
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("selection started", "entries", st.Len(), "highlight", st.HighlightIndex())

	// Registered before EnterRaw so a partial acquisition is still released.
	// Logging waits until the block is gone, the logger may share the tty.
	defer func() {
		if cerr := s.term.Clear(); cerr != nil && err == nil {
			err = &domain.TerminalError{Op: "clear", Err: cerr}
		}
		if lerr := s.term.LeaveRaw(); lerr != nil && err == nil {
			err = &domain.TerminalError{Op: "leave raw mode", Err: lerr}
		}
		s.logOutcome(res, err)
	}()

	if err := s.term.EnterRaw(); err != nil {
		return Result{}, &domain.TerminalError{Op: "enter raw mode", Err: err}
	}

	for {
		if err := s.term.Render(s.view.Lines(st)); err != nil {
			return Result{}, &domain.TerminalError{Op: "render", Err: err}
		}

		ev, err := s.term.ReadEvent()
		if err != nil {
			return Result{}, &domain.TerminalError{Op: "read event", Err: err}
		}
		if ev.Kind != KeyPress {
			continue
		}

		cmd := s.keys.Resolve(ev.Key)
		switch st.Apply(cmd) {
		case PhaseConfirmed:
			return Selected(st.Highlighted().ID), nil
		case PhaseCancelled:
			return Cancelled(), nil
		}
	}
}

func (s *Selector) logOutcome(res Result, err error) {
	if err != nil {
		s.logger.Debug("selection failed", "error", err)
		return
	}
	if id, ok := res.ID(); ok {
		s.logger.Debug("selection confirmed", "key", id)
		return
	}
	s.logger.Debug("selection cancelled")
}
