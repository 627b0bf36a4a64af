package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// newTestState returns a default-arena state with the ball placed explicitly.
func newTestState(x, y, vx, vy int) *State {
	s := NewState(DefaultArena())
	s.Ball = Ball{Pos: core.V(x, y), Vel: core.V(vx, vy)}
	return s
}

func TestStepCornerBounce(t *testing.T) {
	s := newTestState(21, 21, -4, -4)

	ev := Step(s)

	if ev.Wall != CollisionLeft || !ev.Top {
		t.Errorf("events = %+v, want left wall and top", ev)
	}
	if s.Ball.Vel != core.V(4, 4) {
		t.Errorf("velocity = %+v, want (4, 4)", s.Ball.Vel)
	}
	if s.Ball.Pos != core.V(25, 25) {
		t.Errorf("position = %+v, want (25, 25)", s.Ball.Pos)
	}
	if s.Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", s.Ticks)
	}
}

func TestStepRightWall(t *testing.T) {
	s := newTestState(566, 300, 4, 4)

	ev := Step(s)

	if ev.Wall != CollisionRight {
		t.Errorf("Wall = %v, want CollisionRight", ev.Wall)
	}
	if s.Ball.Vel.X != -4 {
		t.Errorf("vx = %d, want -4", s.Ball.Vel.X)
	}
	if s.Ball.Pos.X != 562 {
		t.Errorf("x = %d, want 562", s.Ball.Pos.X)
	}
}

func TestStepPaddleBounce(t *testing.T) {
	s := newTestState(300, 545, 4, 4)

	ev := Step(s)

	if !ev.Paddle {
		t.Fatal("expected paddle collision")
	}
	if s.Ball.Vel != core.V(4, -4) {
		t.Errorf("velocity = %+v, want (4, -4)", s.Ball.Vel)
	}
	if s.Ball.Pos != core.V(304, 541) {
		t.Errorf("position = %+v, want (304, 541)", s.Ball.Pos)
	}
}

func TestStepBrickReflection(t *testing.T) {
	tests := []struct {
		name     string
		pos      core.Vec2
		vel      core.Vec2
		wantSide CollisionSide
		wantVel  core.Vec2
		wantPos  core.Vec2
		row      int
		col      int
	}{
		{
			name:     "side hit inverts x",
			pos:      core.V(41, 100),
			vel:      core.V(4, 4),
			wantSide: CollisionBrickX,
			wantVel:  core.V(-4, 4),
			wantPos:  core.V(37, 104),
			row:      1,
			col:      0,
		},
		{
			name:     "bottom hit inverts y",
			pos:      core.V(80, 119),
			vel:      core.V(4, -4),
			wantSide: CollisionBrickY,
			wantVel:  core.V(4, 4),
			wantPos:  core.V(84, 123),
			row:      1,
			col:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(tt.pos.X, tt.pos.Y, tt.vel.X, tt.vel.Y)

			ev := Step(s)

			if ev.Brick != tt.wantSide {
				t.Errorf("Brick = %v, want %v", ev.Brick, tt.wantSide)
			}
			if ev.Row != tt.row || ev.Col != tt.col {
				t.Errorf("hit (%d, %d), want (%d, %d)", ev.Row, ev.Col, tt.row, tt.col)
			}
			if s.Grid.Present(tt.row, tt.col) {
				t.Error("brick should be destroyed")
			}
			if s.Score != BrickPoints {
				t.Errorf("Score = %d, want %d", s.Score, BrickPoints)
			}
			if s.Ball.Vel != tt.wantVel {
				t.Errorf("velocity = %+v, want %+v", s.Ball.Vel, tt.wantVel)
			}
			if s.Ball.Pos != tt.wantPos {
				t.Errorf("position = %+v, want %+v", s.Ball.Pos, tt.wantPos)
			}
		})
	}
}

func TestStepOneBrickPerTick(t *testing.T) {
	s := newTestState(60, 75, 4, -4)

	Step(s)

	if got := s.Grid.Remaining(); got != BrickRows*BrickCols-1 {
		t.Errorf("Remaining() = %d, want %d", got, BrickRows*BrickCols-1)
	}
	if s.Score != BrickPoints {
		t.Errorf("Score = %d, want %d", s.Score, BrickPoints)
	}
}

func TestStepWinOnLastBrick(t *testing.T) {
	s := newTestState(60, 75, 4, -4)
	for row := range BrickRows {
		for col := range BrickCols {
			if row != 0 || col != 0 {
				s.Grid.Destroy(row, col)
			}
		}
	}
	s.Score = WinScore - BrickPoints

	Step(s)

	if s.Phase != core.PhaseWon {
		t.Fatalf("Phase = %v, want won", s.Phase)
	}
	if s.Score != WinScore {
		t.Errorf("Score = %d, want %d", s.Score, WinScore)
	}
	if !s.Grid.Cleared() {
		t.Error("grid should be cleared on win")
	}
	if s.Ball.Pos != core.V(60, 75) {
		t.Errorf("ball should not move on the winning tick, got %+v", s.Ball.Pos)
	}

	// Terminal: further steps change nothing.
	before := *s
	Step(s)
	if *s != before {
		t.Error("Step after win should be a no-op")
	}
}

func TestStepLoss(t *testing.T) {
	s := newTestState(300, 600, 4, 4)
	s.Score = 50

	Step(s)

	if s.Phase != core.PhaseLost {
		t.Fatalf("Phase = %v, want lost", s.Phase)
	}
	if s.Score != 50 {
		t.Errorf("Score = %d, want unchanged 50", s.Score)
	}

	before := *s
	Step(s)
	if *s != before {
		t.Error("Step after loss should be a no-op")
	}
}

func TestStepPausedNoop(t *testing.T) {
	s := newTestState(200, 300, 4, -4)
	s.Paused = true
	before := *s

	Step(s)

	if *s != before {
		t.Error("Step while paused should not change state")
	}
}

// TestStepInvariants runs a long game with a paddle that tracks the ball
// and checks the properties that must hold after every tick.
func TestStepInvariants(t *testing.T) {
	s := NewState(DefaultArena())
	a := s.Arena
	prevScore := 0
	prevGrid := s.Grid

	for range 20000 {
		if !s.Running() {
			break
		}

		ballCenter := s.Ball.Pos.X + BallSize/2
		paddleCenter := s.PaddleX + PaddleWidth/2
		switch {
		case ballCenter < paddleCenter-PaddleSpeed:
			MovePaddle(s, Intent{Left: true})
		case ballCenter > paddleCenter+PaddleSpeed:
			MovePaddle(s, Intent{Right: true})
		}

		Step(s)

		if x := s.Ball.Pos.X; x < a.BallMinX() || x > a.BallMaxX() {
			t.Fatalf("tick %d: ball x %d outside [%d, %d]", s.Ticks, x, a.BallMinX(), a.BallMaxX())
		}
		if s.Ball.Pos.Y <= Margin {
			t.Fatalf("tick %d: ball y %d above the top wall", s.Ticks, s.Ball.Pos.Y)
		}
		if core.Abs(s.Ball.Vel.X) != BallSpeed || core.Abs(s.Ball.Vel.Y) != BallSpeed {
			t.Fatalf("tick %d: velocity %+v lost its magnitude", s.Ticks, s.Ball.Vel)
		}
		if s.Score < prevScore || s.Score%BrickPoints != 0 || s.Score > WinScore {
			t.Fatalf("tick %d: bad score %d (previous %d)", s.Ticks, s.Score, prevScore)
		}
		if s.Score != (BrickRows*BrickCols-s.Grid.Remaining())*BrickPoints {
			t.Fatalf("tick %d: score %d does not match %d destroyed bricks",
				s.Ticks, s.Score, BrickRows*BrickCols-s.Grid.Remaining())
		}
		for row := range BrickRows {
			for col := range BrickCols {
				if !prevGrid.Present(row, col) && s.Grid.Present(row, col) {
					t.Fatalf("tick %d: brick (%d, %d) came back", s.Ticks, row, col)
				}
			}
		}
		if s.PaddleX < a.PaddleMinX() || s.PaddleX > a.PaddleMaxX() {
			t.Fatalf("tick %d: paddle x %d out of range", s.Ticks, s.PaddleX)
		}
		if s.Phase == core.PhaseWon && s.Score != WinScore {
			t.Fatalf("tick %d: won with score %d", s.Ticks, s.Score)
		}

		prevScore = s.Score
		prevGrid = s.Grid
	}

	// A paddle that never misses clears the whole grid.
	if s.Phase != core.PhaseWon || !s.Grid.Cleared() || s.Score != WinScore {
		t.Fatalf("after %d ticks: phase %v, score %d, %d bricks left; want a won game",
			s.Ticks, s.Phase, s.Score, s.Grid.Remaining())
	}
}
