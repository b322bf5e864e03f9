package selector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqClearDown  = "\x1b[J"

	// Longest parameter run accepted before a sequence is discarded
	maxSeqLen = 16
)

// ANSITerminal is a Terminal on a raw-mode tty that redraws its block in
// place with ANSI cursor movement.
type ANSITerminal struct {
	fd    int
	in    *bufio.Reader
	out   io.Writer
	width func() int
	state *term.State
	drawn int // Lines in the block currently on screen

	// Set after an ESC that arrived alone; a following "[" or "O" still
	// opens a sequence when the two land in separate reads.
	pendingEsc bool

	makeRaw func(fd int) (*term.State, error)
	restore func(fd int, st *term.State) error
}

// NewANSITerminal creates a terminal reading keys from in and drawing on out.
// in must be a tty for EnterRaw to succeed.
func NewANSITerminal(in *os.File, out io.Writer) *ANSITerminal {
	fd := int(in.Fd())
	t := newANSITerminal(in, out, fd)
	t.width = func() int {
		w, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return w
	}
	return t
}

func newANSITerminal(in io.Reader, out io.Writer, fd int) *ANSITerminal {
	return &ANSITerminal{
		fd:      fd,
		in:      bufio.NewReader(in),
		out:     out,
		width:   func() int { return 0 },
		makeRaw: term.MakeRaw,
		restore: term.Restore,
	}
}

// EnterRaw switches the tty to raw mode and hides the cursor
func (t *ANSITerminal) EnterRaw() error {
	if t.state != nil {
		return nil
	}
	st, err := t.makeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = st
	_, err = io.WriteString(t.out, seqHideCursor)
	return err
}

// LeaveRaw shows the cursor and restores the tty mode saved by EnterRaw.
// It is a no-op when raw mode is not held.
func (t *ANSITerminal) LeaveRaw() error {
	if t.state == nil {
		return nil
	}
	st := t.state
	t.state = nil

	_, werr := io.WriteString(t.out, seqShowCursor)
	if err := t.restore(t.fd, st); err != nil {
		return err
	}
	return werr
}

// Render replaces the previously drawn block with lines. Lines are
// truncated to the terminal width so the block height equals len(lines).
func (t *ANSITerminal) Render(lines []string) error {
	var b strings.Builder
	t.rewind(&b)

	width := t.width()
	for i, line := range lines {
		if width > 0 {
			line = ansi.Truncate(line, width-1, "…")
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\r\n")
		}
	}

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return err
	}
	t.drawn = len(lines)
	return nil
}

// Clear erases the drawn block and leaves the cursor where it started
func (t *ANSITerminal) Clear() error {
	if t.drawn == 0 {
		return nil
	}
	var b strings.Builder
	t.rewind(&b)
	t.drawn = 0
	_, err := io.WriteString(t.out, b.String())
	return err
}

// rewind moves the cursor to the first column of the drawn block and
// erases everything below it.
func (t *ANSITerminal) rewind(b *strings.Builder) {
	if t.drawn == 0 {
		return
	}
	b.WriteString("\r")
	if t.drawn > 1 {
		fmt.Fprintf(b, "\x1b[%dA", t.drawn-1)
	}
	b.WriteString(seqClearDown)
}

// ReadEvent decodes the next key from the input stream. A raw tty
// delivers presses only, so every event is a KeyPress.
func (t *ANSITerminal) ReadEvent() (Event, error) {
	r, _, err := t.in.ReadRune()
	if err != nil {
		return Event{}, err
	}

	pending := t.pendingEsc
	t.pendingEsc = false
	if pending && (r == '[' || r == 'O') {
		return t.readSequence()
	}

	switch {
	case r == '\r' || r == '\n':
		return Press(tea.KeyMsg{Type: tea.KeyEnter}), nil
	case r == 0x1b:
		if t.in.Buffered() == 0 {
			t.pendingEsc = true
			return Press(tea.KeyMsg{Type: tea.KeyEsc}), nil
		}
		return t.readEscape()
	case r == utf8.RuneError:
		return Press(tea.KeyMsg{Type: tea.KeyNull}), nil
	case r < 0x20 || r == 0x7f:
		// Control bytes share their values with bubbletea's KeyType constants
		return Press(tea.KeyMsg{Type: tea.KeyType(r)}), nil
	default:
		return Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}), nil
	}
}

// readEscape decodes the remainder of an escape sequence
func (t *ANSITerminal) readEscape() (Event, error) {
	r, _, err := t.in.ReadRune()
	if err != nil {
		return Event{}, err
	}

	if r != '[' && r != 'O' {
		if r >= 0x20 && r != 0x7f {
			return Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}), nil
		}
		return Press(tea.KeyMsg{Type: tea.KeyNull}), nil
	}
	return t.readSequence()
}

// readSequence decodes a CSI/SS3 body: parameter bytes up to a final byte
// in 0x40..0x7e. The final byte may arrive in a later read.
func (t *ANSITerminal) readSequence() (Event, error) {
	var final rune
	for range maxSeqLen {
		c, _, err := t.in.ReadRune()
		if err != nil {
			return Event{}, err
		}
		if c >= 0x40 && c <= 0x7e {
			final = c
			break
		}
	}

	switch final {
	case 'A':
		return Press(tea.KeyMsg{Type: tea.KeyUp}), nil
	case 'B':
		return Press(tea.KeyMsg{Type: tea.KeyDown}), nil
	case 'C':
		return Press(tea.KeyMsg{Type: tea.KeyRight}), nil
	case 'D':
		return Press(tea.KeyMsg{Type: tea.KeyLeft}), nil
	case 'H':
		return Press(tea.KeyMsg{Type: tea.KeyHome}), nil
	case 'F':
		return Press(tea.KeyMsg{Type: tea.KeyEnd}), nil
	default:
		return Press(tea.KeyMsg{Type: tea.KeyNull}), nil
	}
}
