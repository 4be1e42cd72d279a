package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine"
)

func TestAnalyzeRepetitions(t *testing.T) {
	moves := gocube.MustParseMoves("R R' U U U F")
	report := AnalyzeRepetitions(moves)

	require.Len(t, report.ImmediateCancellations, 1)
	assert.Equal(t, "R", report.ImmediateCancellations[0].Move1)
	assert.Equal(t, "R'", report.ImmediateCancellations[0].Move2)

	require.Len(t, report.TripleTurns, 1)
	assert.Equal(t, 2, report.TripleTurns[0].StartIndex)
	assert.Equal(t, "U'", report.TripleTurns[0].Equivalent)

	assert.Equal(t, 4, report.TotalWastedMoves)
}

func TestAnalyzeRepetitionsShortInput(t *testing.T) {
	report := AnalyzeRepetitions(gocube.MustParseMoves("R"))
	assert.Empty(t, report.ImmediateCancellations)
	assert.Zero(t, report.TotalWastedMoves)
}

func TestFindBackAndForth(t *testing.T) {
	moves := gocube.MustParseMoves("R U R U R U F")
	report := AnalyzeRepetitions(moves)

	require.Len(t, report.BackAndForthPatterns, 1)
	p := report.BackAndForthPatterns[0]
	assert.Equal(t, 0, p.StartIndex)
	assert.Equal(t, 5, p.EndIndex)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, []string{"R", "U"}, p.Pattern)
}

func TestOptimizeMoves(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R'", ""},
		{"R R R", "R'"},
		{"R R R R", ""},
		{"R' R'", "R R"},
		{"U R R' U'", ""},
		{"F R U R' U' F'", "F R U R' U' F'"},
		{"L L L D D' L", ""},
	}
	for _, tt := range tests {
		got := OptimizeMoves(gocube.MustParseMoves(tt.in))
		assert.Equal(t, tt.want, gocube.FormatMoves(got), tt.in)
	}
}

func TestOptimizedSequenceReachesSameState(t *testing.T) {
	e := gocube.NewEngine(gocube.WithSeed(8))
	moves := e.Scramble(60)

	opt := gocube.NewEngine()
	require.NoError(t, opt.ApplyMoves(OptimizeMoves(moves)...))
	assert.Equal(t, e.StateString(), opt.StateString())
}

func TestSummarize(t *testing.T) {
	s := Summarize(gocube.MustParseMoves("R U U U R'"))
	assert.Equal(t, 5, s.TotalMoves)
	assert.Equal(t, 3, s.OptimizedMoves)
	assert.InDelta(t, 0.6, s.Efficiency, 1e-9)
	assert.Equal(t, gocube.FaceU, s.Profile.MostUsedFace)
	assert.Equal(t, 3, s.Profile.FaceCounts[gocube.FaceU])
	assert.Equal(t, 4, s.Profile.TurnCounts[gocube.CW])

	assert.Equal(t, 1.0, CalculateEfficiency(nil, nil))
}
