package recorder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine"
)

func TestRestoreWithoutFileIsSolved(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	e, base, err := sf.Restore()
	require.NoError(t, err)
	assert.True(t, e.IsSolved())
	assert.Empty(t, e.History())
	assert.Equal(t, gocube.NewCube(), base)
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)

	e := gocube.NewEngine(gocube.WithSeed(3))
	e.Scramble(10)
	base := e.Cube()
	steps := e.Solve()
	require.NoError(t, sf.Capture(base, e))
	require.NoError(t, sf.SetLastSession("abc"))

	reopened, err := NewStateFile(path)
	require.NoError(t, err)
	restored, restoredBase, err := reopened.Restore()
	require.NoError(t, err)

	assert.Equal(t, e.StateString(), restored.StateString())
	assert.Equal(t, e.History(), restored.History())
	assert.Len(t, restored.History(), len(steps))
	assert.Equal(t, base, restoredBase)
	assert.Equal(t, "abc", reopened.LastSessionID())
}

func TestRestoreRejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_state":"nope"}`), 0o644))

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	_, _, err = sf.Restore()
	assert.ErrorIs(t, err, gocube.ErrInvalidState)
}

func TestRestoreRejectsCorruptHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"history":"R U9"}`), 0o644))

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	_, _, err = sf.Restore()
	assert.ErrorIs(t, err, gocube.ErrInvalidMove)
}

func TestNewStateFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, err := NewStateFile(path)
	assert.Error(t, err)
}
