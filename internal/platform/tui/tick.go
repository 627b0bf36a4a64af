// Package tui provides the Bubble Tea integration for Breakout.
// It handles the terminal UI loop, input mapping, run recording and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain; ticks from a stopped chain are dropped so
// restarting the clock never runs two chains at once.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(period time.Duration, gen int) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
