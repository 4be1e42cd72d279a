package gocube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidMove  = errors.New("gocube: invalid move")
	ErrInvalidState = errors.New("gocube: invalid cube state")
)

// InvalidMoveError is returned when a move outside the 12 quarter-turn
// alphabet is applied or parsed. It matches ErrInvalidMove with errors.Is.
type InvalidMoveError struct {
	Notation string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("gocube: invalid move %q", e.Notation)
}

// Is reports whether target is ErrInvalidMove.
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
