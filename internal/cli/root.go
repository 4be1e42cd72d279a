// Package cli implements the command-line interface for gocube.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/config"
	"github.com/SeamusWaldron/gocube_engine/internal/logging"
	"github.com/SeamusWaldron/gocube_engine/internal/recorder"
	"github.com/SeamusWaldron/gocube_engine/internal/render"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

const version = "0.2.0"

// app carries the global flags and everything derived from them.
type app struct {
	// Global flags
	configPath string
	dbPath     string
	statePath  string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNoOp()}

	rootCmd := &cobra.Command{
		Use:   "gocube",
		Short: "Rubik's cube engine",
		Long: `GoCube - a 3x3 Rubik's cube engine for the terminal.

Turn faces with standard notation, scramble, run the layer-by-layer demo
solver, replay its steps interactively and keep a history of sessions.

The cube is kept in a state file between runs, so commands build on
each other:

  gocube scramble
  gocube move R U R' U'
  gocube solve --save
  gocube history`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/"+config.DirName+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/"+config.DirName+"/gocube.db)")
	rootCmd.PersistentFlags().StringVar(&a.statePath, "state", "", "State file path (default: ~/"+config.DirName+"/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newStateCmd(a),
		newResetCmd(a),
		newMoveCmd(a),
		newScrambleCmd(a),
		newSolveCmd(a),
		newSaveCmd(a),
		newHistoryCmd(a),
		newPlayCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config and builds the logger. Flags win over the config
// file and the environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	if a.statePath != "" {
		cfg.StatePath = a.statePath
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = logging.LogLevelDebug
	}

	a.cfg = cfg
	a.logger = logging.New(level, cfg.LogFormat, cmd.ErrOrStderr())
	a.logger.Debug("config loaded",
		slog.String("db", cfg.DBPath),
		slog.String("state", cfg.StatePath))
	return nil
}

// engineOptions returns the engine options implied by config.
func (a *app) engineOptions() []gocube.Option {
	opts := []gocube.Option{
		gocube.WithLogger(a.logger),
		gocube.WithScrambleLength(a.cfg.ScrambleLength),
	}
	if a.cfg.Seed != 0 {
		opts = append(opts, gocube.WithSeed(a.cfg.Seed))
	}
	return opts
}

// session is the cube restored from the state file.
type session struct {
	file   *recorder.StateFile
	engine *gocube.Engine
	base   gocube.Cube
}

// openSession restores the cube from the state file.
func (a *app) openSession(extra ...gocube.Option) (*session, error) {
	sf, err := recorder.NewStateFile(a.cfg.StatePath)
	if err != nil {
		return nil, err
	}
	e, base, err := sf.Restore(append(a.engineOptions(), extra...)...)
	if err != nil {
		return nil, err
	}
	return &session{file: sf, engine: e, base: base}, nil
}

// save writes the cube and its history back to the state file.
func (s *session) save() error {
	return s.file.Capture(s.base, s.engine)
}

// openDB opens the database and brings its schema up to date.
func (a *app) openDB(ctx context.Context) (*storage.DB, error) {
	db, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newRenderer returns a renderer matching the color profile of w.
func newRenderer(w io.Writer) *render.Renderer {
	return render.New(lipgloss.NewRenderer(w))
}
