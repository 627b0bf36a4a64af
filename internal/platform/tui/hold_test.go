package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHoldTrackerFirstPressWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	if !h.press(core.ActionLeft, t0) {
		t.Fatal("first press should start a hold")
	}
	if got := h.expire(t0.Add(499 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released %v inside the first window", got)
	}
	got := h.expire(t0.Add(500 * time.Millisecond))
	if len(got) != 1 || got[0] != core.ActionLeft {
		t.Fatalf("expire = %v, want [left]", got)
	}
	if h.held(core.ActionLeft) {
		t.Error("released key should not be held")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	h.press(core.ActionRight, t0)
	at := t0.Add(480 * time.Millisecond)
	for range 5 {
		if h.press(core.ActionRight, at) {
			t.Fatal("auto-repeat should not start a new hold")
		}
		at = at.Add(50 * time.Millisecond)
		if got := h.expire(at); len(got) != 0 {
			t.Fatalf("released %v while repeats keep arriving", got)
		}
	}

	if got := h.expire(at.Add(100 * time.Millisecond)); len(got) != 1 {
		t.Fatalf("expire = %v, want right released", got)
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	h.press(core.ActionLeft, t0)
	h.press(core.ActionRight, t0.Add(10*time.Millisecond))

	if h.held(core.ActionLeft) {
		t.Error("pressing right should drop the left hold")
	}
	got := h.expire(t0.Add(time.Second))
	if len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("expire = %v, want [right]", got)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := newHoldTracker(time.Second, time.Second)
	h.press(core.ActionLeft, time.Now())
	h.reset()
	if h.held(core.ActionLeft) {
		t.Error("reset should forget holds")
	}
}
