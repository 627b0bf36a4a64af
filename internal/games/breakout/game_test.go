package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// scriptedInputs alternates the paddle left and right in bursts and pauses
// once in the middle.
func scriptedInputs(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			frames[i].Press(core.ActionLeft)
		case i%40 == 20:
			frames[i].Press(core.ActionRight)
		case i%40 == 35:
			frames[i].Release(core.ActionRight)
		}
		if i == n/2 || i == n/2+10 {
			frames[i].Press(core.ActionPause)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	inputs := scriptedInputs(1500)

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hashes differ: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Ticks != snap2.Ticks {
		t.Errorf("runs diverged: score %d/%d ticks %d/%d", snap1.Score, snap2.Score, snap1.Ticks, snap2.Ticks)
	}
	if snap1.PaddleX != snap2.PaddleX {
		t.Errorf("paddle positions differ: %d vs %d", snap1.PaddleX, snap2.PaddleX)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("ball positions differ")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0", state.Score)
	}
	if state.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, want playing", state.Phase)
	}
	if state.Paused {
		t.Error("game should not start paused")
	}

	v := g.View()
	if v.Ball != core.NewRect(295, 520, BallSize, BallSize) {
		t.Errorf("ball = %+v, want at (295, 520)", v.Ball)
	}
	if v.Paddle != core.NewRect(250, 550, PaddleWidth, PaddleHeight) {
		t.Errorf("paddle = %+v, want at (250, 550)", v.Paddle)
	}
	if v.Grid.Remaining() != BrickRows*BrickCols {
		t.Errorf("Remaining() = %d, want full grid", v.Grid.Remaining())
	}
}

func TestGameResetArenaSize(t *testing.T) {
	tests := []struct {
		name         string
		arenaW       int
		arenaH       int
		wantW, wantH int
	}{
		{"unset uses default", 0, 0, 600, 600},
		{"custom size", 800, 700, 800, 700},
		{"grown to minimum", 300, 200, MinArenaWidth, MinArenaHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.ArenaW, cfg.ArenaH = tt.arenaW, tt.arenaH

			g := New()
			g.Reset(cfg)

			a := g.View().Arena
			if a.W != tt.wantW || a.H != tt.wantH {
				t.Errorf("arena = %dx%d, want %dx%d", a.W, a.H, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGameNewGameRoundTrip(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	fresh := g.View()

	for _, in := range scriptedInputs(400) {
		g.Step(in)
	}
	g.state.Grid.Destroy(0, 0)
	g.state.Score += BrickPoints
	g.state.Phase = core.PhaseLost

	g.NewGame()

	if got := g.View(); got != fresh {
		t.Errorf("View after NewGame = %+v, want %+v", got, fresh)
	}
	if g.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", g.Frames())
	}
	if g.Intent().Active() {
		t.Error("intents should be cleared by NewGame")
	}
}

func TestGameStepMovesPaddleThenBall(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Press(core.ActionLeft)
	g.Step(in)

	v := g.View()
	if v.Paddle.X != 245 {
		t.Errorf("paddle x = %d, want 245", v.Paddle.X)
	}
	if v.Ball.X != 299 || v.Ball.Y != 516 {
		t.Errorf("ball = (%d, %d), want (299, 516)", v.Ball.X, v.Ball.Y)
	}

	// Held key keeps moving without new events.
	g.Step(core.NewInputFrame())
	if x := g.View().Paddle.X; x != 240 {
		t.Errorf("paddle x = %d, want 240", x)
	}

	in = core.NewInputFrame()
	in.Release(core.ActionLeft)
	g.Step(in)
	if x := g.View().Paddle.X; x != 240 {
		t.Errorf("paddle x after release = %d, want 240", x)
	}
}

func TestGameLastEvents(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	if ev := g.LastEvents(); ev.Row != -1 || ev.Col != -1 {
		t.Errorf("fresh game events = %+v, want no brick", ev)
	}

	// Ball overlapping the bottom of brick (0, 0) while moving up.
	g.state.Ball.Pos = core.V(80, 79)
	g.state.Ball.Vel = core.V(BallSpeed, -BallSpeed)
	g.Tick()

	ev := g.LastEvents()
	if ev.Row != 0 || ev.Col != 0 || ev.Brick != CollisionBrickY {
		t.Errorf("events = %+v, want brick (0, 0) hit from below", ev)
	}

	g.NewGame()
	if ev := g.LastEvents(); ev.Row != -1 {
		t.Errorf("events after NewGame = %+v, want cleared", ev)
	}

	// Open space below the grid.
	g.state.Ball.Pos = core.V(300, 300)
	g.Tick()
	if ev := g.LastEvents(); ev.Row != -1 || ev.Paddle {
		t.Errorf("events = %+v, want nothing hit", ev)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("Step with pause press should pause")
	}

	before := g.View()
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.View() != before {
		t.Error("paused game should not advance")
	}
	if g.Frames() != 11 {
		t.Errorf("Frames() = %d, want 11", g.Frames())
	}

	if g.TogglePause() {
		t.Fatal("TogglePause should resume")
	}
	if g.Tick() != core.PhasePlaying {
		t.Error("Tick should keep playing")
	}
	if g.View().Ticks != before.Ticks+1 {
		t.Errorf("Ticks = %d, want %d", g.View().Ticks, before.Ticks+1)
	}
}

func TestGamePauseIgnoredWhenOver(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.state.Phase = core.PhaseWon

	if g.TogglePause() {
		t.Error("TogglePause should not pause a finished game")
	}

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	if g.Step(in).State.Paused {
		t.Error("pause event should be ignored after the game ended")
	}
	if g.Tick() != core.PhaseWon {
		t.Error("finished game should stay won")
	}
}

func TestGameSetIntent(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	g.SetIntent(DirRight, true)
	g.Tick()
	if x := g.View().Paddle.X; x != 255 {
		t.Errorf("paddle x = %d, want 255", x)
	}

	g.SetIntent(DirRight, false)
	g.Tick()
	if x := g.View().Paddle.X; x != 255 {
		t.Errorf("paddle x after release = %d, want 255", x)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Breakout" {
		t.Errorf("Title() = %q", g.Title())
	}
}
