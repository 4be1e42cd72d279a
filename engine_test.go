package gocube

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineStartsSolved(t *testing.T) {
	e := NewEngine()
	assert.True(t, e.IsSolved())
	assert.Equal(t, solvedState, e.StateString())
	assert.Empty(t, e.History())
}

func TestEngineHistoryTracksMovesInOrder(t *testing.T) {
	e := NewEngine()
	moves := []Move{R, UPrime, F, F, DPrime, L}
	for _, m := range moves {
		require.NoError(t, e.ApplyMove(m))
	}
	assert.Equal(t, moves, e.History())

	e.Reset()
	assert.Empty(t, e.History())
	assert.True(t, e.IsSolved())
	assert.Equal(t, solvedState, e.StateString())
}

func TestEngineHistoryIsACopy(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.ApplyMove(R))
	h := e.History()
	h[0] = L
	assert.Equal(t, []Move{R}, e.History())
}

func TestEngineRejectsInvalidMove(t *testing.T) {
	e := NewEngine(WithSeed(1))
	e.Scramble(10)
	before := e.StateString()
	historyLen := len(e.History())

	err := e.ApplyMove(Move{Face: Face(42), Turn: CW})
	require.Error(t, err)

	var moveErr *InvalidMoveError
	require.True(t, errors.As(err, &moveErr))
	assert.ErrorIs(t, err, ErrInvalidMove)

	assert.Equal(t, before, e.StateString())
	assert.Len(t, e.History(), historyLen)
}

func TestApplyNotation(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.ApplyNotation("R U R' U'"))
	assert.Equal(t, SexyMove, e.History())

	before := e.StateString()
	err := e.ApplyNotation("R U2 R'")
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, before, e.StateString(), "nothing applies when a token is invalid")
	assert.Len(t, e.History(), 4)
}

func TestScrambleIsDeterministicWithSeed(t *testing.T) {
	a := NewEngine(WithSeed(2024))
	b := NewEngine(WithSeed(2024))
	movesA := a.Scramble(20)
	movesB := b.Scramble(20)

	assert.Equal(t, movesA, movesB)
	assert.Equal(t, a.StateString(), b.StateString())
	assert.Equal(t, movesA, a.History())
}

func TestScrambleLength(t *testing.T) {
	e := NewEngine(WithSeed(5))
	assert.Len(t, e.Scramble(-1), DefaultScrambleLength)
	assert.Len(t, e.History(), DefaultScrambleLength)

	e = NewEngine(WithSeed(5), WithScrambleLength(7))
	assert.Len(t, e.Scramble(-1), 7)

	e = NewEngine(WithSeed(5))
	assert.Empty(t, e.Scramble(0))
	assert.True(t, e.IsSolved())
}

func TestScrambleUnsolvesCube(t *testing.T) {
	solved := 0
	for seed := uint64(0); seed < 200; seed++ {
		e := NewEngine(WithSeed(seed))
		e.Scramble(20)
		if e.IsSolved() {
			solved++
		}
	}
	// A 20-move random walk lands on solved with negligible probability.
	assert.LessOrEqual(t, solved, 2)
}

func TestScrambleUsesWholeAlphabet(t *testing.T) {
	e := NewEngine(WithSeed(77))
	seen := make(map[Move]int)
	for _, m := range e.Scramble(2000) {
		seen[m]++
	}
	for _, m := range AllMoves {
		assert.Greater(t, seen[m], 100, "move %s", m)
	}
}

func TestLoadReplacesStateAndClearsHistory(t *testing.T) {
	src := NewEngine(WithSeed(9))
	src.Scramble(15)

	dst := NewEngine()
	require.NoError(t, dst.ApplyMove(F))
	dst.Load(src.Cube())

	assert.Equal(t, src.StateString(), dst.StateString())
	assert.Empty(t, dst.History())
}

func TestEngineLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := NewEngine(WithLogger(logger))
	require.NoError(t, e.ApplyMove(BPrime))
	assert.Contains(t, buf.String(), "move applied")
	assert.Contains(t, buf.String(), "B'")
}
