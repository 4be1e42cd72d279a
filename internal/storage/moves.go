package storage

import (
	"context"
	"fmt"

	"github.com/SeamusWaldron/gocube_engine"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Face      string
	Turn      int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	q querier
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{q: db.DB}
}

// CreateBatch stores moves with consecutive indexes starting at startIndex.
// Run it inside DB.Transaction (via SaveSession) when the batch must be atomic.
func (r *MoveRepository) CreateBatch(ctx context.Context, sessionID string, moves []gocube.Move, startIndex int) error {
	for i, move := range moves {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO moves (session_id, move_index, face, turn, notation)
			VALUES (?, ?, ?, ?, ?)
		`, sessionID, startIndex+i, move.Face.String(), int(move.Turn), move.Notation())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
		}
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(ctx context.Context, sessionID string) ([]MoveRecord, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT move_id, session_id, move_index, face, turn, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// ToMoves converts stored records back into cube moves.
func ToMoves(records []MoveRecord) ([]gocube.Move, error) {
	moves := make([]gocube.Move, 0, len(records))
	for _, rec := range records {
		m, err := gocube.ParseMove(rec.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", rec.MoveIndex, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Count returns the number of moves in a session.
func (r *MoveRepository) Count(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
