package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session kinds.
const (
	KindManual   = "manual"
	KindScramble = "scramble"
	KindSolve    = "solve"
)

// timeFormat has a fixed-width fraction so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Session represents a recorded run of moves against one cube.
type Session struct {
	SessionID    string
	Kind         string
	StartedAt    time.Time
	EndedAt      *time.Time
	InitialState string
	FinalState   *string
	Solved       bool
	Notes        *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	q querier
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{q: db.DB}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(ctx context.Context, kind, initialState, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (session_id, kind, started_at, initial_state, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, kind, startedAt.Format(timeFormat), initialState, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Finish records the final state of a session.
func (r *SessionRepository) Finish(ctx context.Context, sessionID, finalState string, solved bool) error {
	endedAt := time.Now().UTC()

	result, err := r.q.ExecContext(ctx, `
		UPDATE sessions
		SET ended_at = ?, final_state = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(timeFormat), finalState, solved, sessionID)

	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return nil
}

const sessionColumns = `session_id, kind, started_at, ended_at, initial_state, final_state, solved, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(
		&s.SessionID, &s.Kind, &startedAtStr, &endedAtStr,
		&s.InitialState, &s.FinalState, &s.Solved, &s.Notes,
	)
	if err != nil {
		return s, err
	}

	s.StartedAt, _ = time.Parse(timeFormat, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeFormat, endedAtStr.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and all related data (cascading).
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
