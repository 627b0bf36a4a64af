package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "breakout"

// Game wires the controller, paddle motion and simulation step behind the
// platform's Game interface. Each tick applies queued input, moves the
// paddle, then advances the ball.
type Game struct {
	runtime core.RuntimeConfig
	state   *State
	ctrl    Controller
	frames  uint64 // Step calls since the last reset, paused ones included
	last    StepEvents
	labels  KeyLabels
}

// New creates a Breakout game in the reference arena.
// Call Reset before the first Step to size it for a runtime.
func New() *Game {
	return &Game{
		runtime: core.DefaultConfig(),
		state:   NewState(DefaultArena()),
		labels:  DefaultKeyLabels(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset adopts the runtime's arena size and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	arena := DefaultArena()
	if runtime.ArenaW > 0 || runtime.ArenaH > 0 {
		arena = NewArena(runtime.ArenaW, runtime.ArenaH)
	}
	g.state = NewState(arena)
	g.NewGame()
}

// NewGame resets score, bricks, ball, paddle, pause and intents.
func (g *Game) NewGame() {
	g.state.Reset()
	g.ctrl.Reset()
	g.frames = 0
	g.last = StepEvents{Row: -1, Col: -1}
}

// Step applies the frame's input events in order, then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, e := range in.Events {
		g.applyEvent(e)
	}
	g.frames++
	g.Tick()
	return core.StepResult{State: g.State()}
}

// applyEvent routes one input event to the controller. Pause only toggles
// while the game is still being played.
func (g *Game) applyEvent(e core.InputEvent) {
	if e.Action == core.ActionPause && g.state.Phase.Terminal() {
		return
	}
	if g.ctrl.Apply(e) {
		g.state.Paused = g.ctrl.Paused()
	}
}

// Tick moves the paddle then advances the ball by one step.
// Returns the phase after the tick.
func (g *Game) Tick() core.Phase {
	if !g.state.Running() {
		return g.state.Phase
	}
	if g.ctrl.Active() {
		MovePaddle(g.state, g.ctrl.Intent())
	}
	g.last = Step(g.state)
	return g.state.Phase
}

// SetIntent presses or releases a paddle direction.
func (g *Game) SetIntent(d Direction, active bool) {
	g.ctrl.Set(d, active)
}

// TogglePause flips the pause flag while playing and returns it.
func (g *Game) TogglePause() bool {
	if g.state.Phase.Terminal() {
		return g.state.Paused
	}
	g.state.Paused = g.ctrl.TogglePause()
	return g.state.Paused
}

// Intent returns the currently held directions.
func (g *Game) Intent() Intent {
	return g.ctrl.Intent()
}

// View returns a read-only snapshot for rendering.
func (g *Game) View() View {
	return g.state.View()
}

// SetKeyLabels changes the key names shown in the overlays.
func (g *Game) SetKeyLabels(labels KeyLabels) {
	g.labels = labels.withDefaults()
}

// LastEvents returns what happened during the most recent tick.
func (g *Game) LastEvents() StepEvents {
	return g.last
}

// Frames returns the number of Step calls since the last reset.
func (g *Game) Frames() uint64 {
	return g.frames
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Phase:  g.state.Phase,
		Paused: g.state.Paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
