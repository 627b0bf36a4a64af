package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lipgloss.Width(lines[0]) != 6 || lipgloss.Width(lines[1]) != 6 {
		t.Errorf("line widths = %d, %d, want 6", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestRenderScreenCoversEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
