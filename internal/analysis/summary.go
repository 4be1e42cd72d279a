package analysis

import (
	"github.com/SeamusWaldron/gocube_engine"
)

// MovementProfile counts which faces and directions a sequence uses.
type MovementProfile struct {
	FaceCounts   map[gocube.Face]int `json:"face_counts"`
	TurnCounts   map[gocube.Turn]int `json:"turn_counts"`
	MostUsedFace gocube.Face         `json:"most_used_face"`
}

// AnalyzeMovementProfile analyzes which faces and turns are most used.
// Ties for the most used face go to the earlier face in gocube.Faces.
func AnalyzeMovementProfile(moves []gocube.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts: make(map[gocube.Face]int),
		TurnCounts: make(map[gocube.Turn]int),
	}

	for _, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.Turn]++
	}

	maxFaceCount := 0
	for _, face := range gocube.Faces {
		if count := profile.FaceCounts[face]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	return profile
}

// Summary is the compact report printed for a stored session.
type Summary struct {
	TotalMoves     int               `json:"total_moves"`
	OptimizedMoves int               `json:"optimized_moves"`
	Efficiency     float64           `json:"efficiency"`
	Profile        *MovementProfile  `json:"profile"`
	Repetitions    *RepetitionReport `json:"repetitions"`
}

// Summarize runs every analysis over moves.
func Summarize(moves []gocube.Move) Summary {
	optimized := OptimizeMoves(moves)
	return Summary{
		TotalMoves:     len(moves),
		OptimizedMoves: len(optimized),
		Efficiency:     CalculateEfficiency(moves, optimized),
		Profile:        AnalyzeMovementProfile(moves),
		Repetitions:    AnalyzeRepetitions(moves),
	}
}
