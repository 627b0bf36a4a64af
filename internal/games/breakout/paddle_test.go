package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMovePaddle(t *testing.T) {
	tests := []struct {
		name  string
		start int
		in    Intent
		want  int
	}{
		{"left step", 200, Intent{Left: true}, 195},
		{"right step", 200, Intent{Right: true}, 205},
		{"no intent", 200, Intent{}, 200},
		{"clamped at left margin", 22, Intent{Left: true}, 20},
		{"stays at left margin", 20, Intent{Left: true}, 20},
		{"clamped at right margin", 478, Intent{Right: true}, 480},
		{"stays at right margin", 480, Intent{Right: true}, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultArena())
			s.PaddleX = tt.start

			MovePaddle(s, tt.in)

			if s.PaddleX != tt.want {
				t.Errorf("PaddleX = %d, want %d", s.PaddleX, tt.want)
			}
		})
	}
}

func TestMovePaddleFrozen(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
		phase  core.Phase
	}{
		{"paused", true, core.PhasePlaying},
		{"won", false, core.PhaseWon},
		{"lost", false, core.PhaseLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultArena())
			s.Paused = tt.paused
			s.Phase = tt.phase
			start := s.PaddleX

			MovePaddle(s, Intent{Left: true})

			if s.PaddleX != start {
				t.Errorf("PaddleX = %d, want unchanged %d", s.PaddleX, start)
			}
		})
	}
}

func TestMovePaddleWideArena(t *testing.T) {
	s := NewState(NewArena(800, 600))
	s.PaddleX = s.Arena.PaddleMaxX()

	MovePaddle(s, Intent{Right: true})

	if s.PaddleX != 680 {
		t.Errorf("PaddleX = %d, want 680", s.PaddleX)
	}
}
