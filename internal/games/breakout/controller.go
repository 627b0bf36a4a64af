package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Direction is a horizontal paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// Intent is the set of direction keys the player is holding.
// Left and Right are never both set.
type Intent struct {
	Left  bool
	Right bool
}

// Active reports whether any direction is held.
func (i Intent) Active() bool {
	return i.Left || i.Right
}

// Controller turns discrete key transitions into paddle intents and the
// pause flag.
type Controller struct {
	intent Intent
	paused bool
}

// Press marks a direction as held and clears the opposite one.
func (c *Controller) Press(d Direction) {
	switch d {
	case DirLeft:
		c.intent = Intent{Left: true}
	case DirRight:
		c.intent = Intent{Right: true}
	}
}

// Release clears a held direction. Releasing a key that is not held
// (e.g. Left after Right took over) changes nothing.
func (c *Controller) Release(d Direction) {
	switch d {
	case DirLeft:
		c.intent.Left = false
	case DirRight:
		c.intent.Right = false
	}
}

// Set presses or releases a direction.
func (c *Controller) Set(d Direction, active bool) {
	if active {
		c.Press(d)
		return
	}
	c.Release(d)
}

// TogglePause inverts the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Apply feeds one input event into the controller.
// Returns false for actions the controller does not handle.
func (c *Controller) Apply(e core.InputEvent) bool {
	switch e.Action {
	case core.ActionLeft:
		c.Set(DirLeft, e.Kind == core.Press)
	case core.ActionRight:
		c.Set(DirRight, e.Kind == core.Press)
	case core.ActionPause:
		if e.Kind == core.Press {
			c.TogglePause()
		}
	default:
		return false
	}
	return true
}

// Intent returns the held directions.
func (c *Controller) Intent() Intent {
	return c.intent
}

// Paused returns the pause flag.
func (c *Controller) Paused() bool {
	return c.paused
}

// Active reports whether paddle motion should tick: a direction is held
// and the game is not paused.
func (c *Controller) Active() bool {
	return c.intent.Active() && !c.paused
}

// Reset clears intents and unpauses.
func (c *Controller) Reset() {
	*c = Controller{}
}
