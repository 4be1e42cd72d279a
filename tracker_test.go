package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(nil)
	if !tr.Engine().IsSolved() {
		t.Error("New tracker should start solved")
	}

	require.NoError(t, tr.ApplyMove(R))
	if tr.Engine().IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.Engine().IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	assert.Equal(t, StageScrambled, tr.HighestStage())
}

func TestTrackerStageCallback(t *testing.T) {
	tr := NewTracker(NewEngine())
	tr.Reset()

	var reached []Stage
	tr.SetStageCallback(func(stage Stage) {
		reached = append(reached, stage)
	})

	require.NoError(t, tr.ApplyMove(U))
	assert.Equal(t, StageScrambled, tr.CurrentStage())
	assert.Empty(t, reached)

	require.NoError(t, tr.ApplyMove(UPrime))
	assert.Equal(t, []Stage{StageYellowCornersOriented}, reached)
	assert.Equal(t, StageYellowCornersOriented, tr.HighestStage())

	// Going backwards does not fire again.
	require.NoError(t, tr.ApplyMoves([]Move{R, RPrime}))
	assert.Len(t, reached, 1)
}

func TestTrackerRejectsInvalidMove(t *testing.T) {
	tr := NewTracker(nil)
	err := tr.ApplyMove(Move{Face: FaceU, Turn: 3})
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Empty(t, tr.Engine().History())
}
