package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func newPlayCmd(a *app) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Turn the cube interactively",
		Long: `Start an interactive TUI showing the cube as a coloured net.

Keyboard shortcuts:
  f b u d l r   - Turn a face clockwise
  F B U D L R   - Turn a face counter-clockwise
  s             - Scramble
  x             - Reset to solved
  z             - Undo the last move
  enter         - Run the demo solver and play its steps
  space/n       - Next solver step (pauses playback)
  p             - Pause or resume playback
  q/Esc         - Quit and save the cube

The cube is loaded from and saved to the state file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}

			model := newPlayModel(s.engine, s.base, render.New(nil), delay, a.logger)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("play error: %w", err)
			}

			s.base = model.base
			return s.save()
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 400*time.Millisecond, "Delay between solver steps during playback")
	return cmd
}

// playModel is the interactive player. It owns one engine through its tracker.
type playModel struct {
	tracker  *gocube.Tracker
	base     gocube.Cube
	renderer *render.Renderer
	logger   *slog.Logger

	// Solver playback
	steps     []gocube.Step
	stepIndex int
	paused    bool
	delay     time.Duration

	lastStage gocube.Stage
	message   string
	err       error
	quitting  bool
}

func newPlayModel(e *gocube.Engine, base gocube.Cube, r *render.Renderer, delay time.Duration, logger *slog.Logger) *playModel {
	m := &playModel{
		tracker:  gocube.NewTracker(e),
		base:     base,
		renderer: r,
		logger:   logger,
		delay:    delay,
	}
	m.lastStage = m.tracker.HighestStage()
	m.tracker.SetStageCallback(func(stage gocube.Stage) {
		m.lastStage = stage
		m.logger.Debug("stage reached", slog.String("stage", stage.String()))
	})
	return m
}

type playStepMsg struct{}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) scheduleNextStep() tea.Cmd {
	if m.paused || !m.playing() {
		return nil
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return playStepMsg{}
	})
}

func (m *playModel) playing() bool {
	return m.stepIndex < len(m.steps)
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case playStepMsg:
		if !m.paused && m.playing() {
			m.advance()
			return m, m.scheduleNextStep()
		}
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.startSolve()
		return m, m.scheduleNextStep()

	case " ", "n":
		if m.playing() {
			m.paused = true
			m.advance()
		}
		return m, nil

	case "p":
		if m.playing() {
			m.paused = !m.paused
			return m, m.scheduleNextStep()
		}
		return m, nil

	case "s":
		m.stopPlayback()
		e := m.tracker.Engine()
		m.tracker.Reset()
		m.base = e.Cube()
		moves := e.Scramble(-1)
		m.lastStage = m.tracker.HighestStage()
		m.message = "Scrambled: " + gocube.FormatMoves(moves)
		return m, nil

	case "x":
		m.stopPlayback()
		m.tracker.Reset()
		m.base = m.tracker.Engine().Cube()
		m.lastStage = m.tracker.HighestStage()
		m.message = "Reset to solved"
		return m, nil

	case "z":
		m.undo()
		return m, nil
	}

	if len(key) == 1 {
		notation := strings.ToUpper(key)
		if key == notation {
			notation += "'"
		}
		mv, err := gocube.ParseMove(notation)
		if err != nil {
			return m, nil
		}
		m.stopPlayback()
		if err := m.tracker.ApplyMove(mv); err != nil {
			m.err = err
		}
		m.message = ""
	}
	return m, nil
}

// startSolve runs the solver on a copy of the cube and queues its steps
// for playback on the tracker.
func (m *playModel) startSolve() {
	m.stopPlayback()
	solver := gocube.NewEngine()
	solver.Load(m.tracker.Engine().Cube())
	m.steps = solver.Solve()
	m.stepIndex = 0
	m.paused = false

	if len(m.steps) == 0 {
		m.message = "Every stage check already passes"
		return
	}
	m.message = fmt.Sprintf("Solver queued %d moves", len(m.steps))
}

// advance plays the next queued solver step.
func (m *playModel) advance() {
	step := m.steps[m.stepIndex]
	m.stepIndex++
	if err := m.tracker.ApplyMove(step.Move); err != nil {
		m.err = err
		m.stopPlayback()
		return
	}
	m.message = fmt.Sprintf("Step %d/%d: %s (%s)", m.stepIndex, len(m.steps), step.Notation(), step.Stage)
}

func (m *playModel) stopPlayback() {
	m.steps = nil
	m.stepIndex = 0
	m.paused = false
}

// undo replays the history without its last move.
func (m *playModel) undo() {
	m.stopPlayback()
	e := m.tracker.Engine()
	history := e.History()
	if len(history) == 0 {
		m.message = "Nothing to undo"
		return
	}
	last := history[len(history)-1]
	e.Load(m.base)
	if err := e.ApplyMoves(history[:len(history)-1]...); err != nil {
		m.err = err
		return
	}
	m.message = "Undid " + last.Notation()
}

func (m *playModel) View() string {
	if m.quitting {
		return "Cube saved.\n"
	}

	var b strings.Builder
	e := m.tracker.Engine()
	c := e.Cube()

	b.WriteString(titleStyle.Render("GoCube Player"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(c))
	b.WriteString("\n\n")

	if c.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", stageStyle.Render("SOLVED!")))
	} else {
		b.WriteString(fmt.Sprintf("Stage: %s\n", stageStyle.Render(c.DetectStage().DisplayName())))
		if m.lastStage > gocube.StageScrambled {
			b.WriteString(fmt.Sprintf("Best: %s\n", statusStyle.Render(m.lastStage.DisplayName())))
		}
	}

	history := e.History()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(history)))
	if len(history) > 0 {
		start := 0
		if len(history) > 20 {
			start = len(history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(gocube.FormatMoves(history[start:])))
		b.WriteString("\n")
	}

	if m.playing() {
		status := fmt.Sprintf("Playback %d/%d", m.stepIndex, len(m.steps))
		if m.paused {
			status += " [PAUSED]"
		}
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "fbudlr=turn  FBUDLR=reverse  s=scramble  x=reset  z=undo  enter=solve  q=quit"
	if m.playing() {
		help = "SPACE/n=next step  p=pause  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
