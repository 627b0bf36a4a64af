package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// MovePaddle moves the paddle one step in the intended direction, clamped
// to the arena interior. No-op while paused, after the game ended, or with
// no direction held.
func MovePaddle(s *State, in Intent) {
	if !s.Running() || !in.Active() {
		return
	}

	x := s.PaddleX
	switch {
	case in.Left:
		x -= PaddleSpeed
	case in.Right:
		x += PaddleSpeed
	}
	s.PaddleX = core.Clamp(x, s.Arena.PaddleMinX(), s.Arena.PaddleMaxX())
}
