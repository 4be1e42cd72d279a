package gocube

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	Red    Color = 0 // Front face when solved
	Orange Color = 1 // Back face when solved
	White  Color = 2 // Up face when solved
	Yellow Color = 3 // Down face when solved
	Green  Color = 4 // Left face when solved
	Blue   Color = 5 // Right face when solved
)

// Colors lists every color in Face order.
var Colors = [6]Color{Red, Orange, White, Yellow, Green, Blue}

func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Orange:
		return "o"
	case White:
		return "w"
	case Yellow:
		return "y"
	case Green:
		return "g"
	case Blue:
		return "b"
	default:
		return "?"
	}
}

// ParseColor converts a state letter back into a Color.
func ParseColor(b byte) (Color, bool) {
	switch b {
	case 'r':
		return Red, true
	case 'o':
		return Orange, true
	case 'w':
		return White, true
	case 'y':
		return Yellow, true
	case 'g':
		return Green, true
	case 'b':
		return Blue, true
	default:
		return 0, false
	}
}

// Face identifies one of the six cube faces.
// The numeric order is the serialization order F, B, U, D, L, R.
type Face int

const (
	FaceF Face = 0 // Front (Red)
	FaceB Face = 1 // Back (Orange)
	FaceU Face = 2 // Up (White)
	FaceD Face = 3 // Down (Yellow)
	FaceL Face = 4 // Left (Green)
	FaceR Face = 5 // Right (Blue)
)

// Faces is the fixed face order used wherever ordering matters.
var Faces = [6]Face{FaceF, FaceB, FaceU, FaceD, FaceL, FaceR}

func (f Face) String() string {
	switch f {
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceF && f <= FaceR
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Cube is the facelet state of a 3x3 cube. It is a plain value:
// assigning a Cube copies all 54 facelets.
//
// Each face has 9 facelets indexed row-major as seen head-on:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// NewCube returns a solved cube.
func NewCube() Cube {
	var c Cube
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = face.SolvedColor()
		}
	}
	return c
}

// Face returns the nine facelets of f.
func (c Cube) Face(f Face) [9]Color {
	return c.Facelets[f]
}

// IsSolved reports whether every face is a single color.
// It does not check that the six face colors differ.
func (c Cube) IsSolved() bool {
	for _, face := range Faces {
		color := c.Facelets[face][0]
		for i := 1; i < 9; i++ {
			if c.Facelets[face][i] != color {
				return false
			}
		}
	}
	return true
}

// StateString returns the 54-character fingerprint of the cube: faces in
// F, B, U, D, L, R order, each face's facelets in index order.
func (c Cube) StateString() string {
	var b strings.Builder
	b.Grow(54)
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			b.WriteString(c.Facelets[face][i].String())
		}
	}
	return b.String()
}

// ParseState rebuilds a Cube from a StateString fingerprint.
// The color counts are checked so the result is a physically plausible sticker set.
func ParseState(s string) (Cube, error) {
	var c Cube
	if len(s) != 54 {
		return c, fmt.Errorf("%w: want 54 facelets, got %d", ErrInvalidState, len(s))
	}
	for n := 0; n < 54; n++ {
		color, ok := ParseColor(s[n])
		if !ok {
			return Cube{}, fmt.Errorf("%w: unknown color %q at %d", ErrInvalidState, s[n], n)
		}
		c.Facelets[Faces[n/9]][n%9] = color
	}
	counts := c.ColorCounts()
	for _, color := range Colors {
		if counts[color] != 9 {
			return Cube{}, fmt.Errorf("%w: color %s appears %d times", ErrInvalidState, color, counts[color])
		}
	}
	return c, nil
}

// ColorCounts returns how many facelets of each color the cube carries.
func (c Cube) ColorCounts() [6]int {
	var counts [6]int
	for _, face := range Faces {
		for _, color := range c.Facelets[face] {
			if int(color) < len(counts) {
				counts[color]++
			}
		}
	}
	return counts
}

// Apply returns the cube after the move. Invalid moves return an error and
// the original cube.
func (c Cube) Apply(m Move) (Cube, error) {
	if err := m.Validate(); err != nil {
		return c, err
	}
	return c.permute(permutationFor(m)), nil
}

// String returns an unfolded net of the cube.
func (c Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
