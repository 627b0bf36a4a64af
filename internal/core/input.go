package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left
	ActionRight          // Right arrow, D - move paddle right
	ActionPause          // Space, P - pause/unpause game
	ActionRestart        // R - restart after win or game over
	ActionExit           // E, Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes key-down from key-up.
type EventKind int

const (
	Press EventKind = iota
	Release
)

// String returns "press" or "release".
func (k EventKind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// InputEvent is a single discrete key transition.
type InputEvent struct {
	Action Action
	Kind   EventKind
}

// InputFrame holds the input events that arrived between two simulation ticks.
// Events are kept in arrival order; games apply them before advancing.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press queues a key-down event for the action.
func (f *InputFrame) Press(a Action) {
	f.Push(InputEvent{Action: a, Kind: Press})
}

// Release queues a key-up event for the action.
func (f *InputFrame) Release(a Action) {
	f.Push(InputEvent{Action: a, Kind: Release})
}

// Push appends an event.
func (f *InputFrame) Push(e InputEvent) {
	if e.Action == ActionNone {
		return
	}
	f.Events = append(f.Events, e)
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Kind == Press {
			return true
		}
	}
	return false
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.Events) == 0 {
		return InputFrame{}
	}
	events := make([]InputEvent, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
