package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/gocube_engine"
)

// StepRecord is one stored solver step.
type StepRecord struct {
	StepID    int64
	SessionID string
	StepIndex int
	Stage     string
	Notation  string
	State     string
}

// StepRepository stores the steps produced by Engine.Solve.
type StepRepository struct {
	q querier
}

// NewStepRepository creates a new step repository.
func NewStepRepository(db *DB) *StepRepository {
	return &StepRepository{q: db.DB}
}

// CreateBatch stores steps in order.
func (r *StepRepository) CreateBatch(ctx context.Context, sessionID string, steps []gocube.Step) error {
	for i, s := range steps {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO solve_steps (session_id, step_index, stage, notation, state)
			VALUES (?, ?, ?, ?, ?)
		`, sessionID, i, s.Stage, s.Notation(), s.State)
		if err != nil {
			return fmt.Errorf("failed to create step %d: %w", i, err)
		}
	}
	return nil
}

// GetBySession retrieves the steps of a session in order.
func (r *StepRepository) GetBySession(ctx context.Context, sessionID string) ([]StepRecord, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT step_id, session_id, step_index, stage, notation, state
		FROM solve_steps
		WHERE session_id = ?
		ORDER BY step_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var s StepRecord
		if err := rows.Scan(&s.StepID, &s.SessionID, &s.StepIndex, &s.Stage, &s.Notation, &s.State); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// SessionRecord is everything SaveSession writes for one session.
type SessionRecord struct {
	Kind         string
	InitialState string
	FinalState   string
	Solved       bool
	Notes        string
	Moves        []gocube.Move
	Steps        []gocube.Step
}

// SaveSession writes a session with its moves and steps in one transaction
// and returns the new session ID.
func (db *DB) SaveSession(ctx context.Context, rec SessionRecord) (string, error) {
	var id string
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		sessions := &SessionRepository{q: tx}
		var err error
		id, err = sessions.Create(ctx, rec.Kind, rec.InitialState, rec.Notes)
		if err != nil {
			return err
		}
		if err := (&MoveRepository{q: tx}).CreateBatch(ctx, id, rec.Moves, 0); err != nil {
			return err
		}
		if err := (&StepRepository{q: tx}).CreateBatch(ctx, id, rec.Steps); err != nil {
			return err
		}
		return sessions.Finish(ctx, id, rec.FinalState, rec.Solved)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
