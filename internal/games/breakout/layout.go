// Package breakout implements a single-level brick breaker: a ball bouncing
// inside a walled arena, a 4x6 brick grid and a player-controlled paddle.
//
// All coordinates are arena pixels. The simulation advances in fixed ticks
// and is fully deterministic, so a run can be reproduced from its input
// events alone.
package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Arena and wall layout.
const (
	Margin = 20 // Wall thickness on every side

	DefaultArenaWidth  = 600
	DefaultArenaHeight = 600
	MinArenaWidth      = 600 // Brick grid plus right wall must fit
	MinArenaHeight     = 400 // Paddle must sit below the brick grid
)

// Ball and paddle.
const (
	BallSize        = 10
	BallSpeed       = 4  // Pixels per tick on each axis
	BallStartOffset = 80 // Ball starts this far above the arena bottom

	PaddleWidth  = 100
	PaddleHeight = 10
	PaddleSpeed  = 5  // Pixels per tick
	PaddleOffset = 50 // Paddle Y is this far above the arena bottom
)

// Brick grid layout.
const (
	BrickRows    = 4
	BrickCols    = 6
	BrickOriginX = 50
	BrickOriginY = 50
	BrickWidth   = 75
	BrickHeight  = 30
	BrickPitchX  = BrickWidth + 10
	BrickPitchY  = BrickHeight + 10
	BrickPoints  = 10
)

// WinScore is reached exactly when every brick is destroyed.
const WinScore = BrickRows * BrickCols * BrickPoints

// TickPeriod is the reference simulation timestep (~66.7 Hz).
const TickPeriod = 15 * time.Millisecond

// Arena is the bounded play area, walls included.
type Arena struct {
	W, H int
}

// NewArena returns an arena of the given size, grown to the minimum
// dimensions if needed.
func NewArena(w, h int) Arena {
	return Arena{
		W: core.Max(w, MinArenaWidth),
		H: core.Max(h, MinArenaHeight),
	}
}

// DefaultArena returns the 600x600 reference arena.
func DefaultArena() Arena {
	return Arena{W: DefaultArenaWidth, H: DefaultArenaHeight}
}

// Interior returns the playable area inside the walls.
func (a Arena) Interior() core.Rect {
	return core.NewRect(Margin, Margin, a.W-2*Margin, a.H-2*Margin)
}

// PaddleY returns the fixed paddle row.
func (a Arena) PaddleY() int {
	return a.H - PaddleOffset
}

// PaddleMinX is the leftmost paddle position.
func (a Arena) PaddleMinX() int {
	return Margin
}

// PaddleMaxX is the rightmost paddle position.
func (a Arena) PaddleMaxX() int {
	return a.W - PaddleWidth - Margin
}

// BallMinX is the leftmost ball position.
func (a Arena) BallMinX() int {
	return Margin
}

// BallMaxX is the rightmost ball position.
func (a Arena) BallMaxX() int {
	return a.W - Margin - BallSize
}
