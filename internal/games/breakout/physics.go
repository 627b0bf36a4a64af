package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// CollisionSide indicates which wall or brick face reflected the ball.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionLeft
	CollisionRight
	CollisionBrickX // Brick hit from the side, X velocity inverted
	CollisionBrickY // Brick hit from above or below, Y velocity inverted
)

// StepEvents reports what happened during one simulation tick.
type StepEvents struct {
	Wall   CollisionSide
	Top    bool
	Paddle bool
	Brick  CollisionSide
	Row    int // Destroyed brick row, -1 if none
	Col    int // Destroyed brick column, -1 if none
}

// Step advances the state by exactly one tick. It is a no-op unless the
// game is playing and not paused.
//
// Order: side walls, top wall, paddle, bricks (first match only), loss,
// integration. All collision tests use the position before integration.
func Step(s *State) StepEvents {
	ev := StepEvents{Row: -1, Col: -1}
	if !s.Running() {
		return ev
	}

	a := s.Arena
	ball := &s.Ball

	ev.Wall = reflectSideWalls(ball, a)
	ev.Top = reflectTopWall(ball)

	if s.BallRect().Intersects(s.PaddleRect()) {
		ball.Vel.Y = -ball.Vel.Y
		ev.Paddle = true
	}

	if row, col, ok := s.Grid.FirstHit(s.BallRect()); ok {
		ev.Row, ev.Col = row, col
		ev.Brick = hitBrick(s, row, col)
		if s.Score >= WinScore {
			s.Phase = core.PhaseWon
			s.Ticks++
			return ev
		}
	}

	if ball.Pos.Y >= a.H {
		s.Phase = core.PhaseLost
		s.Ticks++
		return ev
	}

	ball.Pos = ball.Pos.Add(ball.Vel)
	ball.Pos.X = core.Clamp(ball.Pos.X, a.BallMinX(), a.BallMaxX())
	s.Ticks++
	return ev
}

// reflectSideWalls inverts X velocity when the next move would touch or
// cross a side wall, keeping the ball at least one pixel off the wall.
func reflectSideWalls(ball *Ball, a Arena) CollisionSide {
	nextX := ball.Pos.X + ball.Vel.X
	switch {
	case nextX <= Margin:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.X = core.Max(ball.Pos.X, Margin+1)
		return CollisionLeft
	case nextX+BallSize >= a.W-Margin:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.X = core.Min(ball.Pos.X, a.W-Margin-BallSize-1)
		return CollisionRight
	}
	return CollisionNone
}

// reflectTopWall inverts Y velocity when the next move would touch or
// cross the top wall.
func reflectTopWall(ball *Ball) bool {
	if ball.Pos.Y+ball.Vel.Y > Margin {
		return false
	}
	ball.Vel.Y = -ball.Vel.Y
	ball.Pos.Y = core.Max(ball.Pos.Y, Margin+1)
	return true
}

// hitBrick destroys the brick, scores it and reflects the ball.
// A ball whose horizontal extent only grazes the brick's side came in
// horizontally and bounces on X; everything else bounces on Y.
func hitBrick(s *State, row, col int) CollisionSide {
	if !s.Grid.Destroy(row, col) {
		return CollisionNone
	}
	s.Score += BrickPoints

	brick := BrickRect(row, col)
	x := s.Ball.Pos.X
	if x+BallSize-1 <= brick.X || x+1 >= brick.Right() {
		s.Ball.Vel.X = -s.Ball.Vel.X
		return CollisionBrickX
	}
	s.Ball.Vel.Y = -s.Ball.Vel.Y
	return CollisionBrickY
}
