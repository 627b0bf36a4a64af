package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel lists recorded runs, newest first, and lets the user pick one
// to replay.
type RunsModel struct {
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	selected string
	quitting bool
}

// NewRunsModel creates a browser over runs.
func NewRunsModel(runs []storage.Run, width, height int) RunsModel {
	h := help.New()
	h.Width = width

	m := RunsModel{
		runs:   runs,
		help:   h,
		keys:   DefaultRunsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetRows(RunRows(runs))
	return m
}

// RunColumns are the runs table columns, shared with the plain listing.
var RunColumns = []table.Column{
	{Title: "Run", Width: 10},
	{Title: "When", Width: 14},
	{Title: "Player", Width: 12},
	{Title: "Outcome", Width: 8},
	{Title: "Score", Width: 6},
	{Title: "Frames", Width: 8},
}

// createTable creates the table sized to the window.
func (m *RunsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(RunColumns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-6, 3)), // Title, border and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			shortID(r.ID),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Player,
			string(r.Outcome),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Frames),
		}
	}
	return rows
}

// Init initializes the browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				m.selected = m.runs[i].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RECENT RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a game first!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen run ID, or empty if the user quit.
func (m RunsModel) Selected() string {
	return m.selected
}

// RunRunsBrowser shows the browser and returns the run picked for replay.
func RunRunsBrowser(runs []storage.Run, width, height int) (string, error) {
	p := tea.NewProgram(NewRunsModel(runs, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(RunsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
