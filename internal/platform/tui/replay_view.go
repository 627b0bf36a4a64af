package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	maxReplaySpeed = 16
	rewindSpan     = 5 * time.Second
)

// ReplayKeyMap defines the key bindings for the replay viewer.
type ReplayKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Back   key.Binding
	Exit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Back, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "slower"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back 5s"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "e", "esc", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// ReplayModel plays a stored run back in real time.
type ReplayModel struct {
	run    *storage.Run
	player *replay.Player
	screen *core.Screen
	keys   ReplayKeyMap
	help   help.Model
	period time.Duration

	speed    int // Frames per tick
	paused   bool
	gen      int
	quitting bool
}

// NewReplayModel prepares a viewer for run.
func NewReplayModel(run *storage.Run, period time.Duration, width, height int) (*ReplayModel, error) {
	player, err := replay.NewPlayer(run)
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.Width = width
	return &ReplayModel{
		run:    run,
		player: player,
		screen: core.NewScreen(width, core.Max(height-footerHeight, 0)),
		keys:   DefaultReplayKeyMap(),
		help:   h,
		period: period,
		speed:  1,
	}, nil
}

// Init starts playback.
func (m *ReplayModel) Init() tea.Cmd {
	return m.schedule()
}

func (m *ReplayModel) schedule() tea.Cmd {
	m.gen++
	return tickCmd(m.period, m.gen)
}

// Update handles messages.
func (m *ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if !m.paused && !m.player.Done() {
				return m, m.schedule()
			}
		case key.Matches(msg, m.keys.Faster):
			m.speed = core.Min(m.speed*2, maxReplaySpeed)
		case key.Matches(msg, m.keys.Slower):
			m.speed = core.Max(m.speed/2, 1)
		case key.Matches(msg, m.keys.Back):
			finished := m.player.Done()
			m.player.Rewind(m.rewindFrames())
			if finished && !m.paused {
				return m, m.schedule()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.paused {
			return m, nil
		}
		for range m.speed {
			if !m.player.Step() {
				break
			}
		}
		if m.player.Done() {
			return m, nil
		}
		return m, tickCmd(m.period, m.gen)
	}
	return m, nil
}

// rewindFrames is the number of frames covering rewindSpan.
func (m *ReplayModel) rewindFrames() uint64 {
	if m.period <= 0 {
		return 1
	}
	return uint64(core.Max(int(rewindSpan/m.period), 1)) //#nosec G115 -- positive by construction
}

// Status returns the footer status line.
func (m *ReplayModel) Status() string {
	played, total := m.player.Progress()
	state := "playing"
	switch {
	case m.player.Done():
		state = "finished"
	case m.paused:
		state = "paused"
	}
	return fmt.Sprintf("replay %s  %s  frame %d/%d  %dx", shortID(m.run.ID), state, played, total, m.speed)
}

// View renders the replayed game and the footer.
func (m *ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	m.player.Game().Render(m.screen)
	return RenderScreen(m.screen) + "\n" +
		footerStyle.Render(m.Status()+"  "+m.help.View(m.keys))
}

// RunReplay plays a run in the terminal until it is closed.
func RunReplay(run *storage.Run, period time.Duration, width, height int) error {
	model, err := NewReplayModel(run, period, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
