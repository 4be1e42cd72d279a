package gocube

import "log/slog"

// Stage predicates for the naive solver. They check fixed facelet indices
// against the solved colors and say nothing about whole pieces, so a
// predicate can hold on a cube whose pieces are wrong.

// IsWhiteCrossComplete checks the U edges and the side edges above the middle row.
func (c Cube) IsWhiteCrossComplete() bool {
	for _, pos := range []int{1, 3, 5, 7} {
		if c.Facelets[FaceU][pos] != White {
			return false
		}
	}
	return c.Facelets[FaceF][1] == Red &&
		c.Facelets[FaceR][1] == Blue &&
		c.Facelets[FaceB][1] == Orange &&
		c.Facelets[FaceL][1] == Green
}

// AreWhiteCornersComplete checks the U corners and the top corners of the side faces.
func (c Cube) AreWhiteCornersComplete() bool {
	for _, pos := range []int{0, 2, 6, 8} {
		if c.Facelets[FaceU][pos] != White {
			return false
		}
	}
	return c.sideFaceletsSolved(0, 2)
}

// IsMiddleLayerComplete checks the middle-row edges of the side faces.
func (c Cube) IsMiddleLayerComplete() bool {
	return c.sideFaceletsSolved(3, 5)
}

// IsYellowCrossComplete checks the D edges.
func (c Cube) IsYellowCrossComplete() bool {
	return c.faceletsAre(FaceD, Yellow, 1, 3, 5, 7)
}

// AreYellowCornersPositioned checks the D corners.
func (c Cube) AreYellowCornersPositioned() bool {
	return c.faceletsAre(FaceD, Yellow, 0, 2, 6, 8)
}

// AreYellowCornersOriented checks the whole D face.
func (c Cube) AreYellowCornersOriented() bool {
	return c.faceletsAre(FaceD, Yellow, 0, 1, 2, 3, 4, 5, 6, 7, 8)
}

func (c Cube) faceletsAre(face Face, color Color, positions ...int) bool {
	for _, pos := range positions {
		if c.Facelets[face][pos] != color {
			return false
		}
	}
	return true
}

// sideFaceletsSolved checks positions on F, R, B, L against their solved colors.
func (c Cube) sideFaceletsSolved(positions ...int) bool {
	for _, face := range []Face{FaceF, FaceR, FaceB, FaceL} {
		if !c.faceletsAre(face, face.SolvedColor(), positions...) {
			return false
		}
	}
	return true
}

// StageDef couples a solver stage with its predicate and fixed algorithm.
type StageDef struct {
	Stage     Stage
	Check     func(Cube) bool
	Algorithm []Move
}

// Name returns the display name recorded in solve steps.
func (d StageDef) Name() string {
	return d.Stage.DisplayName()
}

var stageDefs = []StageDef{
	{StageWhiteCross, Cube.IsWhiteCrossComplete, MustParseMoves("F R U R' U' F'")},
	{StageWhiteCorners, Cube.AreWhiteCornersComplete, MustParseMoves("R U R' U'")},
	{StageMiddleLayer, Cube.IsMiddleLayerComplete, MustParseMoves("U R U' R' U' F' U F")},
	{StageYellowCross, Cube.IsYellowCrossComplete, MustParseMoves("F R U R' U' F'")},
	{StageYellowCornersPositioned, Cube.AreYellowCornersPositioned, MustParseMoves("U R U' L' U R' U' L")},
	{StageYellowCornersOriented, Cube.AreYellowCornersOriented, MustParseMoves("R' D' R D")},
}

// Stages returns the solver stages in the order Solve runs them.
func Stages() []StageDef {
	out := make([]StageDef, len(stageDefs))
	copy(out, stageDefs)
	return out
}

// Step records one move played by Solve and the state it produced.
type Step struct {
	Stage string `json:"stage"`
	Move  Move   `json:"-"`
	State string `json:"state"`
}

// Notation returns the move of the step in standard notation.
func (s Step) Notation() string {
	return s.Move.Notation()
}

// Solve runs the six fixed stages. Each stage whose predicate fails plays
// its algorithm once; stages that pass are skipped. History is cleared
// first, so afterwards it holds exactly the moves Solve played.
//
// Solve is a demonstration: it does not search and is not guaranteed to
// reach a solved cube.
func (e *Engine) Solve() []Step {
	e.history = nil
	var steps []Step

	for _, def := range stageDefs {
		if def.Check(e.cube) {
			e.cfg.logger.Debug("stage already complete", slog.String("stage", def.Stage.String()))
			continue
		}
		e.cfg.logger.Debug("playing stage algorithm",
			slog.String("stage", def.Stage.String()),
			slog.String("algorithm", FormatMoves(def.Algorithm)))
		for _, m := range def.Algorithm {
			// Algorithms are parsed from valid notation at init.
			_ = e.ApplyMove(m)
			steps = append(steps, Step{
				Stage: def.Name(),
				Move:  m,
				State: e.cube.StateString(),
			})
		}
	}

	return steps
}

// DetectStage returns the highest stage whose predicate holds together with
// every earlier stage's predicate.
func (c Cube) DetectStage() Stage {
	reached := StageScrambled
	for _, def := range stageDefs {
		if !def.Check(c) {
			break
		}
		reached = def.Stage
	}
	return reached
}

// GetProgress returns which stage predicates hold independently.
func (c Cube) GetProgress() Progress {
	return Progress{
		WhiteCross:              c.IsWhiteCrossComplete(),
		WhiteCorners:            c.AreWhiteCornersComplete(),
		MiddleLayer:             c.IsMiddleLayerComplete(),
		YellowCross:             c.IsYellowCrossComplete(),
		YellowCornersPositioned: c.AreYellowCornersPositioned(),
		YellowCornersOriented:   c.AreYellowCornersOriented(),
		Solved:                  c.IsSolved(),
	}
}
