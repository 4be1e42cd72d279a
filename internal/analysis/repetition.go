// Package analysis inspects move sequences for wasted motion.
package analysis

import (
	"github.com/SeamusWaldron/gocube_engine"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// TripleTurn represents three identical quarter turns that equal one inverse turn.
type TripleTurn struct {
	StartIndex int    `json:"start_index"`
	Move       string `json:"move"`
	Equivalent string `json:"equivalent"`
}

// BackAndForthPattern represents alternating moves (e.g., R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	TripleTurns            []TripleTurn          `json:"triple_turns"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
func AnalyzeRepetitions(moves []gocube.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		TripleTurns:            []TripleTurn{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]

		// R followed by R'
		if m1 == m2.Inverse() {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
		}

		// R R R is R'
		if i+2 < len(moves) && m1 == m2 && m2 == moves[i+2] {
			report.TripleTurns = append(report.TripleTurns, TripleTurn{
				StartIndex: i,
				Move:       m1.Notation(),
				Equivalent: m1.Inverse().Notation(),
			})
			report.TotalWastedMoves += 2
			i += 2
		}
	}

	report.BackAndForthPatterns = findBackAndForth(moves)

	return report
}

// findBackAndForth finds alternating move patterns like R U R U R U.
func findBackAndForth(moves []gocube.Move) []BackAndForthPattern {
	var patterns []BackAndForthPattern

	if len(moves) < 4 {
		return patterns
	}

	i := 0
	for i < len(moves)-3 {
		a, b := moves[i], moves[i+1]

		count := 1
		j := i + 2
		for j < len(moves)-1 {
			if moves[j] == a && moves[j+1] == b {
				count++
				j += 2
			} else {
				break
			}
		}

		// Require at least 3 repetitions to be noteworthy
		if count >= 3 && a != b {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// OptimizeMoves collapses runs of same-face quarter turns. A run's net turn
// modulo four becomes nothing, one turn, two turns, or one inverse turn.
func OptimizeMoves(moves []gocube.Move) []gocube.Move {
	result := make([]gocube.Move, 0, len(moves))

	for _, move := range moves {
		result = append(result, move)
		result = collapseTail(result)
	}

	return result
}

// collapseTail reduces the trailing same-face run of seq.
func collapseTail(seq []gocube.Move) []gocube.Move {
	face := seq[len(seq)-1].Face
	start := len(seq) - 1
	for start > 0 && seq[start-1].Face == face {
		start--
	}

	net := 0
	for _, m := range seq[start:] {
		net += int(m.Turn)
	}
	net = ((net % 4) + 4) % 4

	seq = seq[:start]
	switch net {
	case 1:
		seq = append(seq, gocube.Move{Face: face, Turn: gocube.CW})
	case 2:
		seq = append(seq, gocube.Move{Face: face, Turn: gocube.CW}, gocube.Move{Face: face, Turn: gocube.CW})
	case 3:
		seq = append(seq, gocube.Move{Face: face, Turn: gocube.CCW})
	}
	return seq
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized []gocube.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
