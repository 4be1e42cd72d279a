// Package recorder keeps the CLI's cube alive between invocations.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/gocube_engine"
)

// AppState represents the persistent application state.
// The current cube is BaseState with History applied on top, so both the
// state and the engine's move history survive a restart.
type AppState struct {
	BaseState     string `json:"base_state,omitempty"`
	History       string `json:"history,omitempty"`
	LastSessionID string `json:"last_session_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// NewStateFile creates a new state file manager.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	// Try to load existing state
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// Restore builds an engine holding the saved cube and history. It also
// returns the base cube the history starts from.
func (sf *StateFile) Restore(opts ...gocube.Option) (*gocube.Engine, gocube.Cube, error) {
	e := gocube.NewEngine(opts...)
	base := gocube.NewCube()

	if sf.state.BaseState != "" {
		c, err := gocube.ParseState(sf.state.BaseState)
		if err != nil {
			return nil, base, fmt.Errorf("corrupt state file %s: %w", sf.path, err)
		}
		base = c
		e.Load(base)
	}

	if err := e.ApplyNotation(sf.state.History); err != nil {
		return nil, base, fmt.Errorf("corrupt history in state file %s: %w", sf.path, err)
	}

	return e, base, nil
}

// Capture records the engine's history on top of base and saves.
func (sf *StateFile) Capture(base gocube.Cube, e *gocube.Engine) error {
	sf.state.BaseState = base.StateString()
	sf.state.History = gocube.FormatMoves(e.History())
	return sf.Save()
}

// SetLastSession sets the last saved session ID.
func (sf *StateFile) SetLastSession(sessionID string) error {
	sf.state.LastSessionID = sessionID
	return sf.Save()
}

// LastSessionID returns the last saved session ID.
func (sf *StateFile) LastSessionID() string {
	return sf.state.LastSessionID
}
