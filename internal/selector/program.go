package selector

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/signingkey/internal/domain"
)

// Model is the bubbletea rendition of the selector. It shares State,
// KeyMap and View with the synchronous loop.
type Model struct {
	state *State
	keys  KeyMap
	view  *View
	phase Phase
}

// NewModel creates a Model over st
func NewModel(st *State, keys KeyMap, view *View) *Model {
	return &Model{
		state: st,
		keys:  keys,
		view:  view,
		phase: PhaseActive,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase.Terminal() {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.phase = m.state.Apply(m.keys.Resolve(msg))
		if m.phase.Terminal() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the list. It is empty once the session ended so the
// inline block is erased when the program exits.
func (m *Model) View() string {
	if m.phase.Terminal() {
		return ""
	}
	return m.view.Render(m.state)
}

// Phase returns the session phase
func (m *Model) Phase() Phase {
	return m.phase
}

// Result returns the outcome once the session reached a terminal phase
func (m *Model) Result() Result {
	if m.phase == PhaseConfirmed {
		return Selected(m.state.Highlighted().ID)
	}
	return Cancelled()
}

// Program runs the selector as an inline bubbletea program
type Program struct {
	in     io.Reader
	out    io.Writer
	keys   KeyMap
	view   *View
	logger *slog.Logger
}

// ProgramOption configures a Program
type ProgramOption func(*Program)

// WithProgramIO sets the program input and output
func WithProgramIO(in io.Reader, out io.Writer) ProgramOption {
	return func(p *Program) {
		p.in = in
		p.out = out
	}
}

// WithProgramView overrides the default view
func WithProgramView(v *View) ProgramOption {
	return func(p *Program) {
		p.view = v
	}
}

// WithProgramLogger sets the logger
func WithProgramLogger(logger *slog.Logger) ProgramOption {
	return func(p *Program) {
		p.logger = logger
	}
}

// NewProgram creates a Program on stdin and stderr
func NewProgram(opts ...ProgramOption) *Program {
	p := &Program{
		in:   os.Stdin,
		out:  os.Stderr,
		keys: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.view == nil {
		p.view = NewView(nil, "", "")
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Select runs one session. bubbletea acquires raw mode and restores the
// terminal on every exit path, including errors.
func (p *Program) Select(entries []domain.KeyRecord, currentID string) (Result, error) {
	st, err := NewState(entries, currentID)
	if err != nil {
		return Result{}, err
	}

	model := NewModel(st, p.keys, p.view)
	program := tea.NewProgram(
		model,
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	p.logger.Debug("selection program started", "entries", st.Len())

	final, err := program.Run()
	if err != nil {
		return Result{}, &domain.TerminalError{Op: "run program", Err: err}
	}

	m, ok := final.(*Model)
	if !ok || !m.Phase().Terminal() {
		// Program ended without a decision, e.g. killed by a signal
		p.logger.Debug("selection program ended without a decision")
		return Cancelled(), nil
	}
	res := m.Result()
	if id, ok := res.ID(); ok {
		p.logger.Debug("selection confirmed", "key", id)
	} else {
		p.logger.Debug("selection cancelled")
	}
	return res, nil
}
