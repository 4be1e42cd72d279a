package cli

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/logging"
	"github.com/SeamusWaldron/gocube_engine/internal/render"
)

func newTestPlayModel(e *gocube.Engine) *playModel {
	r := render.New(lipgloss.NewRenderer(io.Discard))
	return newPlayModel(e, e.Cube(), r, time.Millisecond, logging.NewNoOp())
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m *playModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestPlayTurnsFaces(t *testing.T) {
	e := gocube.NewEngine()
	m := newTestPlayModel(e)

	press(m, runeKey('r'), runeKey('U'))
	assert.Equal(t, []gocube.Move{gocube.R, gocube.UPrime}, e.History())

	// Keys outside the face alphabet are ignored.
	press(m, runeKey('a'), runeKey('Q'))
	assert.Len(t, e.History(), 2)
}

func TestPlayUndo(t *testing.T) {
	e := gocube.NewEngine()
	m := newTestPlayModel(e)

	press(m, runeKey('r'), runeKey('u'), runeKey('z'))
	assert.Equal(t, []gocube.Move{gocube.R}, e.History())

	want, err := gocube.NewCube().Apply(gocube.R)
	require.NoError(t, err)
	assert.Equal(t, want, e.Cube())

	press(m, runeKey('z'), runeKey('z'))
	assert.True(t, e.IsSolved())
	assert.Contains(t, m.View(), "Nothing to undo")
}

func TestPlayScrambleAndReset(t *testing.T) {
	e := gocube.NewEngine(gocube.WithSeed(9), gocube.WithScrambleLength(15))
	m := newTestPlayModel(e)

	press(m, runeKey('s'))
	assert.Len(t, e.History(), 15)
	assert.Equal(t, gocube.NewCube(), m.base)

	press(m, runeKey('x'))
	assert.True(t, e.IsSolved())
	assert.Empty(t, e.History())
}

func TestPlaySolverPlayback(t *testing.T) {
	e := gocube.NewEngine()
	require.NoError(t, e.ApplyMove(gocube.R))
	m := newTestPlayModel(e)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.playing())
	assert.NotNil(t, cmd)
	queued := len(m.steps)

	// Stepping pauses playback and applies exactly one move.
	press(m, runeKey('n'))
	assert.True(t, m.paused)
	assert.Equal(t, 1, m.stepIndex)
	assert.Equal(t, []gocube.Move{gocube.R, gocube.F}, e.History())

	// Ticks do nothing while paused.
	m.Update(playStepMsg{})
	assert.Equal(t, 1, m.stepIndex)

	press(m, runeKey('p'))
	for m.playing() {
		m.Update(playStepMsg{})
	}
	assert.Len(t, e.History(), 1+queued)

	want := gocube.NewEngine()
	require.NoError(t, want.ApplyMove(gocube.R))
	want.Solve()
	assert.Equal(t, want.StateString(), e.StateString())
}

func TestPlaySolverNothingToDo(t *testing.T) {
	e := gocube.NewEngine()
	require.NoError(t, e.ApplyMove(gocube.D))
	m := newTestPlayModel(e)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.playing())
	assert.Contains(t, m.View(), "Every stage check already passes")
}

func TestPlayQuit(t *testing.T) {
	m := newTestPlayModel(gocube.NewEngine())
	cmd := press(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, "Cube saved.\n", m.View())
}
