package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	ArenaW     int           // Arena width in pixels
	ArenaH     int           // Arena height in pixels
	TickPeriod time.Duration // Fixed simulation timestep
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		ArenaW:     600,
		ArenaH:     600,
		TickPeriod: 15 * time.Millisecond,
	}
}

// Phase is the coarse state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a lower-case phase name, stable for storage.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game until a reset.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int   // Current score
	Phase  Phase // Playing, Won or Lost
	Paused bool  // Whether the game is paused
}

// GameOver reports whether the game reached a terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
