package gocube

// Stage is one step of the naive layer-by-layer solver.
// Stages progress from StageScrambled (0) to StageYellowCornersOriented (6),
// allowing comparison with < and > operators.
type Stage int

const (
	// StageScrambled means no stage predicate holds.
	StageScrambled Stage = iota

	// StageWhiteCross means the U edges are white and the side edge
	// facelets next to them show their solved colors.
	StageWhiteCross

	// StageWhiteCorners means the whole U face is white and the top
	// corners of the side faces show their solved colors.
	StageWhiteCorners

	// StageMiddleLayer means the middle-row edges of the side faces
	// show their solved colors.
	StageMiddleLayer

	// StageYellowCross means the D edges are yellow.
	StageYellowCross

	// StageYellowCornersPositioned means the D corners are yellow.
	StageYellowCornersPositioned

	// StageYellowCornersOriented means the whole D face is yellow.
	StageYellowCornersOriented
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageScrambled:
		return "scrambled"
	case StageWhiteCross:
		return "white_cross"
	case StageWhiteCorners:
		return "white_corners"
	case StageMiddleLayer:
		return "middle_layer"
	case StageYellowCross:
		return "yellow_cross"
	case StageYellowCornersPositioned:
		return "position_yellow_corners"
	case StageYellowCornersOriented:
		return "orient_yellow_corners"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageScrambled:
		return "Scrambled"
	case StageWhiteCross:
		return "White Cross"
	case StageWhiteCorners:
		return "White Corners"
	case StageMiddleLayer:
		return "Middle Layer"
	case StageYellowCross:
		return "Yellow Cross"
	case StageYellowCornersPositioned:
		return "Position Yellow Corners"
	case StageYellowCornersOriented:
		return "Orient Yellow Corners"
	default:
		return "Unknown"
	}
}

// Progress records which stage predicates currently hold.
type Progress struct {
	WhiteCross              bool
	WhiteCorners            bool
	MiddleLayer             bool
	YellowCross             bool
	YellowCornersPositioned bool
	YellowCornersOriented   bool
	Solved                  bool
}
