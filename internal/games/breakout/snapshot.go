package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Snapshot contains the complete game state for replay verification.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frames  uint64
	Ticks   uint64
	ArenaW  int
	ArenaH  int
	BallX   int
	BallY   int
	BallVX  int
	BallVY  int
	PaddleX int
	Score   int
	Phase   int
	Paused  bool
	Left    bool
	Right   bool

	// Brick states, flattened row-major: 1 = present, 0 = destroyed
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	bricks := make([]int, 0, BrickRows*BrickCols)
	for row := range BrickRows {
		for col := range BrickCols {
			if s.Grid.Present(row, col) {
				bricks = append(bricks, 1)
			} else {
				bricks = append(bricks, 0)
			}
		}
	}

	intent := g.ctrl.Intent()
	return Snapshot{
		Frames:    g.frames,
		Ticks:     s.Ticks,
		ArenaW:    s.Arena.W,
		ArenaH:    s.Arena.H,
		BallX:     s.Ball.Pos.X,
		BallY:     s.Ball.Pos.Y,
		BallVX:    s.Ball.Vel.X,
		BallVY:    s.Ball.Vel.Y,
		PaddleX:   s.PaddleX,
		Score:     s.Score,
		Phase:     int(s.Phase),
		Paused:    s.Paused,
		Left:      intent.Left,
		Right:     intent.Right,
		BrickData: bricks,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	s := NewState(NewArena(snap.ArenaW, snap.ArenaH))
	s.Ticks = snap.Ticks
	s.Ball.Pos = core.V(snap.BallX, snap.BallY)
	s.Ball.Vel = core.V(snap.BallVX, snap.BallVY)
	s.PaddleX = snap.PaddleX
	s.Score = snap.Score
	s.Phase = core.Phase(snap.Phase)
	s.Paused = snap.Paused

	if len(snap.BrickData) == BrickRows*BrickCols {
		for row := range BrickRows {
			for col := range BrickCols {
				if snap.BrickData[row*BrickCols+col] == 0 {
					s.Grid.Destroy(row, col)
				}
			}
		}
	}

	g.state = s
	g.frames = snap.Frames
	g.ctrl = Controller{intent: Intent{Left: snap.Left, Right: snap.Right}, paused: snap.Paused}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + snap.Ticks
	h = h*31 + uint64(snap.ArenaW)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ArenaH)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Left)
	h = h*31 + boolBit(snap.Right)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
