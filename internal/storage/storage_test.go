package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "gocube.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp(context.Background()))
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	v, err := db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, db.MigrateUp(ctx))
	v, err = db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	initial := gocube.NewCube().StateString()
	id, err := repo.Create(ctx, KindManual, initial, "practice")
	require.NoError(t, err)

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, KindManual, s.Kind)
	assert.Equal(t, initial, s.InitialState)
	assert.Nil(t, s.EndedAt)
	assert.Nil(t, s.FinalState)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "practice", *s.Notes)

	require.NoError(t, repo.Finish(ctx, id, initial, true))
	s, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	require.NotNil(t, s.FinalState)
	assert.True(t, s.Solved)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFinishUnknownSession(t *testing.T) {
	db := openTestDB(t)
	err := NewSessionRepository(db).Finish(context.Background(), "missing", "", false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSaveSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	e := gocube.NewEngine(gocube.WithSeed(12))
	initial := e.StateString()
	scramble := e.Scramble(8)
	steps := e.Solve()

	id, err := db.SaveSession(ctx, SessionRecord{
		Kind:         KindSolve,
		InitialState: initial,
		FinalState:   e.StateString(),
		Solved:       e.IsSolved(),
		Moves:        scramble,
		Steps:        steps,
	})
	require.NoError(t, err)

	records, err := NewMoveRepository(db).GetBySession(ctx, id)
	require.NoError(t, err)
	moves, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, scramble, moves)

	count, err := NewMoveRepository(db).Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, len(scramble), count)

	stored, err := NewStepRepository(db).GetBySession(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored, len(steps))
	for i, s := range steps {
		assert.Equal(t, i, stored[i].StepIndex)
		assert.Equal(t, s.Stage, stored[i].Stage)
		assert.Equal(t, s.Notation(), stored[i].Notation)
		assert.Equal(t, s.State, stored[i].State)
	}

	sessions, err := NewSessionRepository(db).List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].SessionID)
	require.NotNil(t, sessions[0].FinalState)
	assert.Equal(t, e.StateString(), *sessions[0].FinalState)
}

func TestDeleteCascadesMoves(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.SaveSession(ctx, SessionRecord{
		Kind:         KindManual,
		InitialState: gocube.NewCube().StateString(),
		Moves:        gocube.SexyMove,
	})
	require.NoError(t, err)

	require.NoError(t, NewSessionRepository(db).Delete(ctx, id))
	count, err := NewMoveRepository(db).Count(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	first, err := repo.Create(ctx, KindManual, gocube.NewCube().StateString(), "")
	require.NoError(t, err)
	second, err := repo.Create(ctx, KindScramble, gocube.NewCube().StateString(), "")
	require.NoError(t, err)

	sessions, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, second, sessions[0].SessionID)
	assert.NotEqual(t, first, second)
}
