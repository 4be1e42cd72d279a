package gocube

import (
	"strings"
)

// Turn represents the direction of a quarter turn.
type Turn int

const (
	CW  Turn = 1  // Clockwise (90 degrees)
	CCW Turn = -1 // Counter-clockwise (90 degrees)
)

// Move is a single quarter turn of one face.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction
}

// AllMoves is the 12-move alphabet.
var AllMoves = [12]Move{
	F, B, U, D, L, R,
	FPrime, BPrime, UPrime, DPrime, LPrime, RPrime,
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R'
func (m Move) Notation() string {
	if m.Turn == CCW {
		return m.Face.String() + "'"
	}
	return m.Face.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = -m.Turn
	return inv
}

// Validate returns an *InvalidMoveError unless m is one of the 12 quarter turns.
func (m Move) Validate() error {
	if !m.Face.Valid() || (m.Turn != CW && m.Turn != CCW) {
		return &InvalidMoveError{Notation: m.Notation()}
	}
	return nil
}

// index returns the position of m in AllMoves.
func (m Move) index() int {
	if m.Turn == CCW {
		return 6 + int(m.Face)
	}
	return int(m.Face)
}

// ParseMove parses a standard notation string into a Move.
// Only the 12 quarter turns are accepted: F, F', B, B', ... R, R'.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, &InvalidMoveError{Notation: s}
	}

	var face Face
	switch s[0] {
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'R':
		face = FaceR
	default:
		return Move{}, &InvalidMoveError{Notation: s}
	}

	turn := CW
	if len(s) == 2 {
		if s[1] != '\'' {
			return Move{}, &InvalidMoveError{Notation: s}
		}
		turn = CCW
	}

	return Move{Face: face, Turn: turn}, nil
}

// MustParseMoves is like ParseMoves but panics on error. Intended for
// package-level algorithm tables.
func MustParseMoves(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
