// Package replay records the input events of a game and plays them back.
//
// The simulation is deterministic, so the events applied on each frame are
// all that is needed to reproduce a run; the final snapshot hash confirms
// the reproduction.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// ErrMismatch is returned when a replay does not reproduce the recorded run.
var ErrMismatch = errors.New("replay: result does not match recording")

// Recorder collects the events fed into a game, keyed by the frame they
// were applied on.
type Recorder struct {
	events []storage.Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record stores the frame's events. frame is the 1-based index of the Step
// call that consumes in.
func (r *Recorder) Record(frame uint64, in core.InputFrame) {
	for _, e := range in.Events {
		r.events = append(r.events, storage.Event{Frame: frame, Action: e.Action, Kind: e.Kind})
	}
}

// Events returns the recorded journal.
func (r *Recorder) Events() []storage.Event {
	return r.events
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}

// Finish builds a storable run from the game's final state.
func (r *Recorder) Finish(g *breakout.Game, outcome storage.Outcome, player string) storage.Run {
	snap := g.Snapshot()
	events := make([]storage.Event, len(r.events))
	copy(events, r.events)

	return storage.Run{
		GameID:  g.ID(),
		Player:  player,
		Outcome: outcome,
		Score:   snap.Score,
		Frames:  snap.Frames,
		Ticks:   snap.Ticks,
		ArenaW:  snap.ArenaW,
		ArenaH:  snap.ArenaH,
		Hash:    snap.Hash(),
		Events:  events,
	}
}

// OutcomeFor maps a game phase to a run outcome. Unfinished games count
// as quit.
func OutcomeFor(p core.Phase) storage.Outcome {
	switch p {
	case core.PhaseWon:
		return storage.OutcomeWon
	case core.PhaseLost:
		return storage.OutcomeLost
	default:
		return storage.OutcomeQuit
	}
}

// CreateGame builds the Breakout game registered under id.
func CreateGame(id string) (*breakout.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	bg, ok := g.(*breakout.Game)
	if !ok {
		return nil, fmt.Errorf("replay: game %q (%T) cannot be recorded", id, g)
	}
	return bg, nil
}

// checkpointEvery is the frame distance between rewind checkpoints.
const checkpointEvery = 256

type checkpoint struct {
	snap breakout.Snapshot
	next int
}

// Player feeds a recorded run back into a fresh game one frame at a time.
type Player struct {
	run         *storage.Run
	game        *breakout.Game
	next        int // Index of the next unapplied event
	checkpoints []checkpoint
}

// NewPlayer prepares the run's game sized like the recorded arena.
func NewPlayer(run *storage.Run) (*Player, error) {
	g, err := CreateGame(run.GameID)
	if err != nil {
		return nil, err
	}
	cfg := core.DefaultConfig()
	cfg.ArenaW, cfg.ArenaH = run.ArenaW, run.ArenaH
	g.Reset(cfg)

	p := &Player{run: run, game: g}
	p.checkpoints = []checkpoint{{snap: g.Snapshot()}}
	return p, nil
}

// Game returns the game being replayed.
func (p *Player) Game() *breakout.Game {
	return p.game
}

// Done reports whether every recorded frame was played.
func (p *Player) Done() bool {
	return p.game.Frames() >= p.run.Frames
}

// Progress returns played and total frames.
func (p *Player) Progress() (played, total uint64) {
	return p.game.Frames(), p.run.Frames
}

// Step plays one recorded frame. Returns false once the recording is
// exhausted.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}

	frame := p.game.Frames() + 1
	in := core.NewInputFrame()
	for p.next < len(p.run.Events) && p.run.Events[p.next].Frame == frame {
		e := p.run.Events[p.next]
		in.Push(core.InputEvent{Action: e.Action, Kind: e.Kind})
		p.next++
	}
	p.game.Step(in)

	if frame%checkpointEvery == 0 && frame > p.lastCheckpoint() {
		p.checkpoints = append(p.checkpoints, checkpoint{snap: p.game.Snapshot(), next: p.next})
	}
	return true
}

// Rewind moves playback back by up to frames frames and returns the frame
// it landed on. It restores the nearest earlier checkpoint and replays
// forward from there.
func (p *Player) Rewind(frames uint64) uint64 {
	current := p.game.Frames()
	target := uint64(0)
	if frames < current {
		target = current - frames
	}

	cp := p.checkpoints[0]
	for _, c := range p.checkpoints {
		if c.snap.Frames > target {
			break
		}
		cp = c
	}

	p.game.ApplySnapshot(cp.snap)
	p.next = cp.next
	for p.game.Frames() < target {
		p.Step()
	}
	return p.game.Frames()
}

func (p *Player) lastCheckpoint() uint64 {
	return p.checkpoints[len(p.checkpoints)-1].snap.Frames
}

// Verify plays the run to the end headless and compares the final state
// with the recording.
func Verify(run *storage.Run) (breakout.Snapshot, error) {
	p, err := NewPlayer(run)
	if err != nil {
		return breakout.Snapshot{}, err
	}
	for !p.Done() {
		p.Step()
	}

	snap := p.game.Snapshot()
	if snap.Hash() != run.Hash {
		return snap, fmt.Errorf("%w: hash %016x, recorded %016x (score %d/%d, ticks %d/%d)",
			ErrMismatch, snap.Hash(), run.Hash, snap.Score, run.Score, snap.Ticks, run.Ticks)
	}
	return snap, nil
}
