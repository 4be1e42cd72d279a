package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

func newStateCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the current cube",
		Long: `Show the current cube as an unfolded net together with its 54-letter
state string, the solver stage it has reached and the moves made since the
last reset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintln(out, s.engine.StateString())
				return nil
			}
			printCube(out, s.engine)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the state string")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the cube to solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			s.engine.Reset()
			s.base = s.engine.Cube()
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cube reset to solved")
			return nil
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <notation...>",
		Short: "Apply moves in standard notation",
		Long: `Apply one or more quarter turns. Each token is a face letter (F B U D L R),
optionally followed by ' for a counter-clockwise turn:

  gocube move R U R' U'
  gocube move "F R U R' U' F'"

The whole sequence is checked before any move is applied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}

			var moves []gocube.Move
			for _, arg := range args {
				parsed, err := gocube.ParseMoves(arg)
				if err != nil {
					return err
				}
				moves = append(moves, parsed...)
			}

			if err := s.engine.ApplyMoves(moves...); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Applied: %s\n", gocube.FormatMoves(moves))
			fmt.Fprintln(out)
			printCube(out, s.engine)
			return nil
		},
	}
}

func newScrambleCmd(a *app) *cobra.Command {
	var (
		count int
		seed  uint64
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Reset the cube and apply random moves",
		Long: `Reset the cube to solved and apply random quarter turns.

The number of moves defaults to scramble_length from the config (20 unless
set). Pass --seed to get the same scramble every time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []gocube.Option
			if cmd.Flags().Changed("seed") {
				extra = append(extra, gocube.WithSeed(seed))
			}
			s, err := a.openSession(extra...)
			if err != nil {
				return err
			}

			s.engine.Reset()
			s.base = s.engine.Cube()
			moves := s.engine.Scramble(count)
			if err := s.save(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scramble (%d moves): %s\n", len(moves), gocube.FormatMoves(moves))
			fmt.Fprintln(out)
			printCube(out, s.engine)

			if save {
				id, err := a.storeSession(cmd, s, storage.SessionRecord{
					Kind:         storage.KindScramble,
					InitialState: s.base.StateString(),
					FinalState:   s.engine.StateString(),
					Solved:       s.engine.IsSolved(),
					Moves:        moves,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSaved session: %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", -1, "Number of moves (default: scramble_length from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a repeatable scramble")
	cmd.Flags().BoolVar(&save, "save", false, "Store the scramble in the history database")
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store the moves made since the last reset",
		Long: `Store the moves made since the last reset or scramble as a manual session
in the history database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}

			moves := s.engine.History()
			if len(moves) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No moves to save")
				return nil
			}

			id, err := a.storeSession(cmd, s, storage.SessionRecord{
				Kind:         storage.KindManual,
				InitialState: s.base.StateString(),
				FinalState:   s.engine.StateString(),
				Solved:       s.engine.IsSolved(),
				Notes:        notes,
				Moves:        moves,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved session: %s (%d moves)\n", id, len(moves))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Notes stored with the session")
	return cmd
}

// storeSession writes rec to the database and remembers it as the last session.
func (a *app) storeSession(cmd *cobra.Command, s *session, rec storage.SessionRecord) (string, error) {
	ctx := cmd.Context()
	db, err := a.openDB(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	id, err := db.SaveSession(ctx, rec)
	if err != nil {
		return "", err
	}
	a.logger.Info("session saved",
		slog.String("session_id", id),
		slog.String("kind", rec.Kind),
		slog.Int("moves", len(rec.Moves)))

	if err := s.file.SetLastSession(id); err != nil {
		return "", err
	}
	return id, nil
}

// printCube writes the net, state string, stage and history of e.
func printCube(w io.Writer, e *gocube.Engine) {
	c := e.Cube()
	r := newRenderer(w)

	fmt.Fprintln(w, r.Net(c))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "State:   %s\n", c.StateString())
	if c.IsSolved() {
		fmt.Fprintln(w, "Stage:   Solved")
	} else {
		fmt.Fprintf(w, "Stage:   %s\n", c.DetectStage().DisplayName())
	}

	history := e.History()
	if len(history) == 0 {
		fmt.Fprintln(w, "History: (none)")
		return
	}
	fmt.Fprintf(w, "History: %d moves: %s\n", len(history), gocube.FormatMoves(history))
}
