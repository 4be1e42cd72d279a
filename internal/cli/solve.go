package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		save  bool
		notes string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the layer-by-layer demo solver",
		Long: `Run the six solver stages against the current cube:

  1. White Cross              F R U R' U' F'
  2. White Corners            R U R' U'
  3. Middle Layer             U R U' R' U' F' U F
  4. Yellow Cross             F R U R' U' F'
  5. Position Yellow Corners  U R U' L' U R' U' L
  6. Orient Yellow Corners    R' D' R D

Each stage whose check fails plays its algorithm once. The solver does not
search, so the cube is usually not solved afterwards. Use 'gocube play' to
step through the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}

			s.base = s.engine.Cube()
			steps := s.engine.Solve()
			if err := s.save(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSteps(out, stepLines(steps), a.verbose)
			fmt.Fprintln(out)
			printCube(out, s.engine)

			if save {
				id, err := a.storeSession(cmd, s, storage.SessionRecord{
					Kind:         storage.KindSolve,
					InitialState: s.base.StateString(),
					FinalState:   s.engine.StateString(),
					Solved:       s.engine.IsSolved(),
					Notes:        notes,
					Moves:        s.engine.History(),
					Steps:        steps,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSaved session: %s\n", id)
				fmt.Fprintf(out, "Show it with: gocube history show %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the solve in the history database")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes stored with the session")
	return cmd
}

// stepLine is one solver step as printed, whether fresh or loaded from storage.
type stepLine struct {
	Stage    string
	Notation string
	State    string
}

func stepLines(steps []gocube.Step) []stepLine {
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		lines[i] = stepLine{Stage: s.Stage, Notation: s.Notation(), State: s.State}
	}
	return lines
}

func storedStepLines(steps []storage.StepRecord) []stepLine {
	lines := make([]stepLine, len(steps))
	for i, s := range steps {
		lines[i] = stepLine{Stage: s.Stage, Notation: s.Notation, State: s.State}
	}
	return lines
}

// printSteps prints steps grouped by stage. With states set, every step
// also shows the state it produced.
func printSteps(w io.Writer, steps []stepLine, states bool) {
	if len(steps) == 0 {
		fmt.Fprintln(w, "Every stage check already passes, no moves played")
		return
	}

	fmt.Fprintf(w, "Solver played %d moves\n", len(steps))
	current := ""
	for i, s := range steps {
		if s.Stage != current {
			current = s.Stage
			fmt.Fprintf(w, "\n%s\n", current)
		}
		if states {
			fmt.Fprintf(w, "  %3d. %-2s  %s\n", i+1, s.Notation, s.State)
		} else {
			fmt.Fprintf(w, "  %3d. %s\n", i+1, s.Notation)
		}
	}
}
