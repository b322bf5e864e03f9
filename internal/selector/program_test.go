package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/signingkey/internal/domain"
	"github.com/riordanpawley/signingkey/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, currentID string) *Model {
	t.Helper()
	st, err := NewState(scenarioKeys(), currentID)
	require.NoError(t, err)
	return NewModel(st, DefaultKeyMap(), NewView(styles.Plain(), "", ""))
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t, "BBBB")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.state.HighlightIndex())

	_, cmd = m.Update(runeKey('j'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.state.HighlightIndex())

	assert.Equal(t, "> AAAA Alice\n  BBBB Bob ← current\n  CCCC Carol", m.View())
}

func TestModel_Confirm(t *testing.T) {
	m := newTestModel(t, "")

	m.Update(runeKey('j'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit, "expected tea.Quit")

	assert.Equal(t, PhaseConfirmed, m.Phase())
	id, ok := m.Result().ID()
	assert.True(t, ok)
	assert.Equal(t, "BBBB", id)
	assert.Empty(t, m.View(), "view is cleared after termination")
}

func TestModel_Cancel(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "")

			_, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)

			assert.Equal(t, PhaseCancelled, m.Phase())
			assert.True(t, m.Result().Cancelled())
		})
	}
}

func TestModel_IgnoresInputAfterTermination(t *testing.T) {
	m := newTestModel(t, "")

	m.Update(runeKey('q'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.state.HighlightIndex())
	assert.Equal(t, PhaseCancelled, m.Phase())
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := newTestModel(t, "")

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseActive, m.Phase())
	assert.Nil(t, m.Init())
}

func TestProgram_EmptyInput(t *testing.T) {
	_, err := NewProgram().Select([]domain.KeyRecord{}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestModel_ViewHighlightsOneRow(t *testing.T) {
	m := newTestModel(t, "CCCC")
	lines := m.view.Lines(m.state)

	highlighted := 0
	for _, line := range lines {
		if ansi.Strip(line)[:2] == DefaultCursor {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)
}
