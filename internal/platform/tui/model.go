package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config config.Config
	Store  *storage.Store // Optional; runs are not saved without it
	Logger *log.Logger    // Optional; discards when nil
	Player string         // "local" or the SSH user
}

// Model is the Bubble Tea model for one Breakout session. It owns the
// fixed-rate clock: ticks run while the game is playing and stop while it
// is paused or finished.
type Model struct {
	game    *breakout.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	player  string
	cfg     config.Config
	runtime core.RuntimeConfig

	keys  KeyMap
	help  help.Model
	holds holdTracker
	now   func() time.Time

	frame   core.InputFrame // Events queued for the next tick
	rec     *replay.Recorder
	gen     int  // Current tick chain
	ticking bool // Whether a tick of the current chain is pending
	saved   bool // Whether the current run has been stored

	width    int
	height   int
	quitting bool
}

// footerHeight is the number of rows under the game screen.
const footerHeight = 1

// NewModel creates a session sized for a width x height terminal.
func NewModel(opts Options, width, height int) (*Model, error) {
	game, err := replay.CreateGame(breakout.GameID)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	h := help.New()
	h.Width = width

	m := &Model{
		game:    game,
		screen:  core.NewScreen(width, core.Max(height-footerHeight, 0)),
		store:   opts.Store,
		logger:  logger,
		player:  player,
		cfg:     opts.Config,
		runtime: opts.Config.Runtime(width, height),
		keys:    NewKeyMap(opts.Config.Keys),
		help:    h,
		holds:   newHoldTracker(opts.Config.Input.HoldFirst, opts.Config.Input.HoldRepeat),
		now:     time.Now,
		frame:   core.NewInputFrame(),
		rec:     replay.NewRecorder(),
		width:   width,
		height:  height,
	}
	m.game.SetKeyLabels(m.keys.Labels())
	m.game.Reset(m.runtime)
	return m, nil
}

// Init starts the clock.
func (m *Model) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.player,
		"arena", m.game.View().Arena, "tick", m.runtime.TickPeriod)
	return m.startClock()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps a key to an action and queues or executes it.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.Action(msg)
	phase := m.game.State().Phase

	switch action {
	case core.ActionExit:
		m.finishRun()
		m.quitting = true
		return tea.Quit

	case core.ActionRestart:
		if !phase.Terminal() {
			return nil
		}
		m.restart()
		return m.startClock()

	case core.ActionLeft, core.ActionRight:
		if phase.Terminal() {
			return nil
		}
		if m.holds.press(action, m.now()) {
			m.frame.Press(action)
		}
		return nil

	case core.ActionPause:
		if phase.Terminal() {
			return nil
		}
		m.frame.Press(core.ActionPause)
		// A paused game has no pending tick to apply the event.
		if !m.ticking {
			return m.startClock()
		}
	}

	return nil
}

// handleResize resizes the screen. The arena is logical, so the game keeps
// running and is projected onto the new size.
func (m *Model) handleResize(width, height int) {
	m.width, m.height = width, height
	m.runtime.ScreenW, m.runtime.ScreenH = width, height
	m.screen.Resize(width, core.Max(height-footerHeight, 0))
	m.help.Width = width
}

// handleTick runs one simulation tick and schedules the next one while the
// game keeps playing.
func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	if msg.Gen != m.gen {
		return nil // Stale chain
	}
	m.ticking = false

	for _, a := range m.holds.expire(msg.Time) {
		m.frame.Release(a)
	}

	m.rec.Record(m.game.Frames()+1, m.frame)
	state := m.game.Step(m.frame).State
	m.frame.Clear()

	if ev := m.game.LastEvents(); ev.Row >= 0 {
		m.logger.Debug("brick destroyed", "row", ev.Row, "col", ev.Col, "score", state.Score)
	}

	if state.Phase.Terminal() {
		m.holds.reset()
		m.logger.Info("game over", "phase", state.Phase, "score", state.Score,
			"ticks", m.game.View().Ticks)
		m.finishRun()
		return nil
	}
	if state.Paused {
		m.logger.Debug("paused", "frame", m.game.Frames())
		return nil
	}

	m.ticking = true
	return tickCmd(m.runtime.TickPeriod, m.gen)
}

// startClock begins a new tick chain, invalidating any pending tick.
func (m *Model) startClock() tea.Cmd {
	m.gen++
	m.ticking = true
	return tickCmd(m.runtime.TickPeriod, m.gen)
}

// restart begins a new game and a new recording.
func (m *Model) restart() {
	m.game.NewGame()
	m.rec.Reset()
	m.holds.reset()
	m.frame.Clear()
	m.saved = false
	m.logger.Info("game restarted", "player", m.player)
}

// finishRun stores the current run once. Runs that never ticked are
// skipped. Storage failures are logged; the session goes on.
func (m *Model) finishRun() {
	if m.saved || m.game.Frames() == 0 {
		return
	}
	m.saved = true

	run := m.rec.Finish(m.game, replay.OutcomeFor(m.game.State().Phase), m.player)
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", id, "outcome", run.Outcome,
		"score", run.Score, "frames", run.Frames, "events", len(run.Events))
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m *Model) Game() *breakout.Game {
	return m.game
}

// Quitting reports whether the session asked to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program and blocks until the player exits.
func Run(opts Options, width, height int) error {
	model, err := NewModel(opts, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
