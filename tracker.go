package gocube

// Tracker wraps an Engine and reports solver stage transitions.
type Tracker struct {
	engine        *Engine
	highestStage  Stage // Monotonic - never goes backwards
	stageCallback func(stage Stage)
}

// NewTracker creates a tracker over engine. A nil engine gets a fresh one.
func NewTracker(engine *Engine) *Tracker {
	if engine == nil {
		engine = NewEngine()
	}
	return &Tracker{
		engine:       engine,
		highestStage: engine.Cube().DetectStage(),
	}
}

// SetStageCallback sets a callback that fires when a new highest stage is reached.
func (t *Tracker) SetStageCallback(cb func(stage Stage)) {
	t.stageCallback = cb
}

// Reset resets the cube to solved and restarts stage tracking from scrambled,
// so the next stage reached fires the callback again.
func (t *Tracker) Reset() {
	t.engine.Reset()
	t.highestStage = StageScrambled
}

// ApplyMove applies a move and checks for stage transitions.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.engine.ApplyMove(m); err != nil {
		return err
	}
	t.checkStageTransition()
	return nil
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracker) checkStageTransition() {
	current := t.engine.Cube().DetectStage()
	if current > t.highestStage {
		t.highestStage = current
		if t.stageCallback != nil {
			t.stageCallback(current)
		}
	}
}

// CurrentStage returns the stage detected on the current cube.
// This may go backwards while moves are applied.
func (t *Tracker) CurrentStage() Stage {
	return t.engine.Cube().DetectStage()
}

// HighestStage returns the highest stage reached since the last reset.
func (t *Tracker) HighestStage() Stage {
	return t.highestStage
}

// Engine returns the underlying engine.
func (t *Tracker) Engine() *Engine {
	return t.engine
}
