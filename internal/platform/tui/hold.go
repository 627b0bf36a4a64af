package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdTracker synthesizes key releases. Terminals deliver a press and then
// auto-repeats while a key is held, but never a release, so a direction
// counts as released once its hold window passes without a repeat.
type holdTracker struct {
	first  time.Duration // Window after the initial press, covers the repeat delay
	repeat time.Duration // Window after each auto-repeat
	until  map[core.Action]time.Time
}

func newHoldTracker(first, repeat time.Duration) holdTracker {
	return holdTracker{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Action]time.Time),
	}
}

// press registers a key press at now. Returns true for a new hold and false
// for an auto-repeat of a key that is already held. Pressing one direction
// drops the hold of the other.
func (h *holdTracker) press(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}

	if _, held := h.until[a]; held {
		h.until[a] = now.Add(h.repeat)
		return false
	}
	h.until[a] = now.Add(h.first)
	return true
}

// expire returns the actions whose hold window ended by now, in a fixed
// order, and forgets them.
func (h *holdTracker) expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if deadline, held := h.until[a]; held && !now.Before(deadline) {
			delete(h.until, a)
			released = append(released, a)
		}
	}
	return released
}

// held reports whether a is currently held.
func (h *holdTracker) held(a core.Action) bool {
	_, ok := h.until[a]
	return ok
}

// reset forgets every hold.
func (h *holdTracker) reset() {
	clear(h.until)
}
