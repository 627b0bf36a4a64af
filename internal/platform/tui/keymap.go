package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// KeyMap binds keys to game actions. It doubles as the help footer source.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Exit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left:    binding(keys.Left, "move left"),
		Right:   binding(keys.Right, "move right"),
		Pause:   binding(keys.Pause, "pause"),
		Restart: binding(keys.Restart, "restart"),
		Exit:    binding(keys.Exit, "exit"),
	}
}

// DefaultKeyMap returns the bindings of the default config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys formats the first two keys for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, 2)
	for _, k := range keys {
		if len(names) == 2 {
			break
		}
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// Labels returns the overlay names of the pause, restart and exit keys:
// the first bound key of each, upper-cased.
func (k KeyMap) Labels() breakout.KeyLabels {
	return breakout.KeyLabels{
		Pause:   overlayLabel(k.Pause),
		Restart: overlayLabel(k.Restart),
		Exit:    overlayLabel(k.Exit),
	}
}

func overlayLabel(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "SPACE"
	}
	return strings.ToUpper(keys[0])
}

// Action resolves a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart, k.Exit},
	}
}
