// Package render draws cube state for the terminal with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_engine"
)

// faceletColors maps each facelet color to a terminal background.
var faceletColors = map[gocube.Color]lipgloss.TerminalColor{
	gocube.Red:    lipgloss.Color("#C41E3A"),
	gocube.Orange: lipgloss.Color("#FF5800"),
	gocube.White:  lipgloss.Color("#FFFFFF"),
	gocube.Yellow: lipgloss.Color("#FFD500"),
	gocube.Green:  lipgloss.Color("#009E60"),
	gocube.Blue:   lipgloss.Color("#0051BA"),
}

// Renderer draws cubes using one lipgloss renderer, so output adapts to the
// color profile of whatever it writes to.
type Renderer struct {
	cells map[gocube.Color]lipgloss.Style
	label lipgloss.Style
}

// New creates a Renderer. A nil r uses the default lipgloss renderer.
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cells := make(map[gocube.Color]lipgloss.Style, len(faceletColors))
	for color, bg := range faceletColors {
		cells[color] = r.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	}
	return &Renderer{
		cells: cells,
		label: r.NewStyle().Faint(true),
	}
}

// Cell renders a single facelet three columns wide.
func (r *Renderer) Cell(c gocube.Color) string {
	return r.cells[c].Render(" " + c.String() + " ")
}

// Face renders a 3x3 face grid.
func (r *Renderer) Face(face [9]gocube.Color) string {
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(r.Cell(face[row*3+col]))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Net renders the unfolded cube:
//
//	    U
//	L F R B
//	    D
func (r *Renderer) Net(c gocube.Cube) string {
	blank := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 9)+"\n", 3), "\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, blank, r.Face(c.Face(gocube.FaceU)))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		r.Face(c.Face(gocube.FaceL)),
		r.Face(c.Face(gocube.FaceF)),
		r.Face(c.Face(gocube.FaceR)),
		r.Face(c.Face(gocube.FaceB)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, blank, r.Face(c.Face(gocube.FaceD)))

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// Fingerprint renders the state string grouped per face, with face labels.
func (r *Renderer) Fingerprint(c gocube.Cube) string {
	state := c.StateString()
	parts := make([]string, 0, len(gocube.Faces))
	for i, face := range gocube.Faces {
		parts = append(parts, r.label.Render(face.String()+":")+state[i*9:(i+1)*9])
	}
	return strings.Join(parts, " ")
}
