package registry

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct {
	id    string
	title string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", stub("zz-stub", "Stub"))

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, want Stub", g.Title())
	}
	if res := g.Step(core.NewInputFrame()); res.State.Score != 1 {
		t.Errorf("Score after one step = %d, want 1", res.State.Score)
	}

	// Every Create returns a fresh instance
	g2, _ := Create("zz-stub")
	if g2.State().Score != 0 {
		t.Errorf("fresh instance Score = %d, want 0", g2.State().Score)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create of unknown game should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("zz-dup", stub("zz-dup", "Dup"))

	expectPanic(t, "duplicate", func() { Register("zz-dup", stub("zz-dup", "Dup")) })
	expectPanic(t, "empty id", func() { Register("", stub("", "")) })
	expectPanic(t, "nil factory", func() { Register("zz-nil", nil) })
	expectPanic(t, "id mismatch", func() { Register("zz-a", stub("zz-b", "B")) })

	if _, err := Create("zz-a"); err == nil {
		t.Error("mismatched registration must not be stored")
	}
}
