package gocube

import (
	"log/slog"
	"math/rand/v2"
)

// Engine owns a cube and its move history.
//
// An Engine is not safe for concurrent use; callers keep one engine per
// session and serialize access to it.
type Engine struct {
	cube    Cube
	history []Move
	cfg     *config
}

// NewEngine creates an engine holding a solved cube.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		cube: NewCube(),
		cfg:  cfg,
	}
}

// Reset restores the solved cube and clears history.
func (e *Engine) Reset() {
	e.cube = NewCube()
	e.history = nil
	e.cfg.logger.Debug("cube reset")
}

// Load replaces the cube state and clears history.
func (e *Engine) Load(c Cube) {
	e.cube = c
	e.history = nil
}

// Cube returns a copy of the current state.
func (e *Engine) Cube() Cube {
	return e.cube
}

// Face returns the nine facelets of f.
func (e *Engine) Face(f Face) [9]Color {
	return e.cube.Facelets[f]
}

// StateString returns the 54-character fingerprint of the current state.
func (e *Engine) StateString() string {
	return e.cube.StateString()
}

// IsSolved reports whether every face shows a single color.
func (e *Engine) IsSolved() bool {
	return e.cube.IsSolved()
}

// History returns the moves applied since the last reset, in order.
func (e *Engine) History() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// ApplyMove applies one quarter turn and records it.
// Invalid moves return an *InvalidMoveError and leave the cube untouched.
func (e *Engine) ApplyMove(m Move) error {
	next, err := e.cube.Apply(m)
	if err != nil {
		return err
	}
	e.cube = next
	e.history = append(e.history, m)
	e.cfg.logger.Debug("move applied", slog.String("move", m.Notation()))
	return nil
}

// ApplyMoves applies a sequence of moves, stopping at the first invalid one.
func (e *Engine) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		if err := e.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses and applies a sequence such as "R U R' U'".
// Nothing is applied if any token is invalid.
func (e *Engine) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return e.ApplyMoves(moves...)
}

// Scramble applies n uniformly random moves and returns them.
// A negative n uses the configured scramble length.
func (e *Engine) Scramble(n int) []Move {
	if n < 0 {
		n = e.cfg.scrambleLength
	}
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		m := AllMoves[e.cfg.rng.IntN(len(AllMoves))]
		// AllMoves only holds valid moves.
		_ = e.ApplyMove(m)
		moves = append(moves, m)
	}
	e.cfg.logger.Debug("cube scrambled", slog.Int("moves", n), slog.String("scramble", FormatMoves(moves)))
	return moves
}
