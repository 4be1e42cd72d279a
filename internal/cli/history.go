package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/analysis"
	"github.com/SeamusWaldron/gocube_engine/internal/recorder"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			sessions, err := storage.NewSessionRepository(db).List(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions recorded yet")
				fmt.Fprintln(out, "Store one with: gocube solve --save")
				return nil
			}

			moveRepo := storage.NewMoveRepository(db)
			fmt.Fprintf(out, "Recent sessions (showing %d):\n", len(sessions))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%-36s  %-8s  %-19s  %-5s  %-6s  %s\n", "ID", "Kind", "Started", "Moves", "Solved", "Notes")
			fmt.Fprintln(out, "------------------------------------  --------  -------------------  -----  ------  -----")

			for _, s := range sessions {
				moves := "-"
				if n, err := moveRepo.Count(ctx, s.SessionID); err == nil {
					moves = fmt.Sprintf("%d", n)
				}

				notes := ""
				if s.Notes != nil {
					notes = *s.Notes
					if len(notes) > 30 {
						notes = notes[:27] + "..."
					}
				}

				fmt.Fprintf(out, "%-36s  %-8s  %-19s  %-5s  %-6s  %s\n",
					s.SessionID,
					s.Kind,
					s.StartedAt.Local().Format("2006-01-02 15:04:05"),
					moves,
					yesNo(s.Solved),
					notes,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of sessions to show")
	cmd.AddCommand(newHistoryShowCmd(a))
	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	var showLast bool

	cmd := &cobra.Command{
		Use:   "show [session-id]",
		Short: "Show a stored session with move analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sessionID string
			switch {
			case len(args) > 0:
				sessionID = args[0]
			case showLast:
				sf, err := recorder.NewStateFile(a.cfg.StatePath)
				if err != nil {
					return err
				}
				sessionID = sf.LastSessionID()
				if sessionID == "" {
					return errors.New("no session saved yet")
				}
			default:
				return errors.New("please provide a session ID or use --last")
			}

			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := storage.NewSessionRepository(db).Get(ctx, sessionID)
			if err != nil {
				return err
			}
			records, err := storage.NewMoveRepository(db).GetBySession(ctx, sessionID)
			if err != nil {
				return err
			}
			moves, err := storage.ToMoves(records)
			if err != nil {
				return err
			}
			steps, err := storage.NewStepRepository(db).GetBySession(ctx, sessionID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSession(out, s)
			fmt.Fprintln(out)
			printSummary(out, analysis.Summarize(moves))

			if len(steps) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Steps")
				fmt.Fprintln(out, "-----")
				printSteps(out, storedStepLines(steps), a.verbose)
			} else if len(moves) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Moves")
				fmt.Fprintln(out, "-----")
				for _, line := range wrapMoves(moves, 12) {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLast, "last", false, "Show the most recently saved session")
	return cmd
}

func printSession(w io.Writer, s *storage.Session) {
	fmt.Fprintln(w, "Session Details")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ID:      %s\n", s.SessionID)
	fmt.Fprintf(w, "Kind:    %s\n", s.Kind)
	fmt.Fprintf(w, "Started: %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Fprintf(w, "Ended:   %s\n", s.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if s.Notes != nil && *s.Notes != "" {
		fmt.Fprintf(w, "Notes:   %s\n", *s.Notes)
	}
	fmt.Fprintf(w, "Initial: %s\n", s.InitialState)
	if s.FinalState != nil {
		fmt.Fprintf(w, "Final:   %s\n", *s.FinalState)
	}
	fmt.Fprintf(w, "Solved:  %s\n", yesNo(s.Solved))
}

func printSummary(w io.Writer, sum analysis.Summary) {
	fmt.Fprintln(w, "Statistics")
	fmt.Fprintln(w, "----------")
	fmt.Fprintf(w, "Moves:      %d\n", sum.TotalMoves)
	fmt.Fprintf(w, "Optimized:  %d\n", sum.OptimizedMoves)
	fmt.Fprintf(w, "Efficiency: %.0f%%\n", sum.Efficiency*100)
	if sum.TotalMoves == 0 {
		return
	}

	faces := make([]string, 0, len(sum.Profile.FaceCounts))
	for face, n := range sum.Profile.FaceCounts {
		faces = append(faces, fmt.Sprintf("%s:%d", face, n))
	}
	sort.Strings(faces)
	fmt.Fprintf(w, "Faces:      %s (most used %s)\n", strings.Join(faces, " "), sum.Profile.MostUsedFace)

	rep := sum.Repetitions
	if rep.TotalWastedMoves > 0 {
		fmt.Fprintf(w, "Wasted:     %d (%d cancellations, %d triple turns)\n",
			rep.TotalWastedMoves, len(rep.ImmediateCancellations), len(rep.TripleTurns))
	}
	for _, p := range rep.BackAndForthPatterns {
		fmt.Fprintf(w, "Pattern:    %s x%d at move %d\n", strings.Join(p.Pattern, " "), p.Count, p.StartIndex+1)
	}
}

// wrapMoves formats moves perLine at a time.
func wrapMoves(moves []gocube.Move, perLine int) []string {
	var lines []string
	for start := 0; start < len(moves); start += perLine {
		end := min(start+perLine, len(moves))
		lines = append(lines, gocube.FormatMoves(moves[start:end]))
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
