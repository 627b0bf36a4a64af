package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball holds the ball's top-left position and per-tick velocity.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// State is the single source of truth for one game session.
type State struct {
	Arena   Arena
	Ball    Ball
	PaddleX int // Paddle left edge; its Y is fixed by the arena
	Grid    Grid
	Score   int
	Paused  bool
	Phase   core.Phase
	Ticks   uint64 // Simulated ticks since the last reset
}

// NewState creates a fresh game in the given arena.
func NewState(arena Arena) *State {
	s := &State{Arena: arena}
	s.Reset()
	return s
}

// Reset starts a new game: ball and paddle back to their start positions,
// score zero, every brick present, phase Playing, not paused.
func (s *State) Reset() {
	a := s.Arena
	s.Ball = Ball{
		Pos: core.V(a.W/2-BallSize/2, a.H-BallStartOffset),
		Vel: core.V(BallSpeed, -BallSpeed),
	}
	s.PaddleX = a.W/2 - PaddleWidth/2
	s.Grid.Fill()
	s.Score = 0
	s.Paused = false
	s.Phase = core.PhasePlaying
	s.Ticks = 0
}

// BallRect returns the ball's bounding box.
func (s *State) BallRect() core.Rect {
	return core.RectAt(s.Ball.Pos, BallSize, BallSize)
}

// PaddleRect returns the paddle's bounding box.
func (s *State) PaddleRect() core.Rect {
	return core.NewRect(s.PaddleX, s.Arena.PaddleY(), PaddleWidth, PaddleHeight)
}

// Running reports whether a tick would advance the simulation.
func (s *State) Running() bool {
	return s.Phase == core.PhasePlaying && !s.Paused
}

// View is a read-only copy of the state handed to renderers.
type View struct {
	Arena  Arena
	Ball   core.Rect
	Paddle core.Rect
	Grid   Grid
	Score  int
	Paused bool
	Phase  core.Phase
	Ticks  uint64
}

// View returns a value snapshot of the state.
func (s *State) View() View {
	return View{
		Arena:  s.Arena,
		Ball:   s.BallRect(),
		Paddle: s.PaddleRect(),
		Grid:   s.Grid,
		Score:  s.Score,
		Paused: s.Paused,
		Phase:  s.Phase,
		Ticks:  s.Ticks,
	}
}
