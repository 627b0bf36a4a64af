package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum screen size that still shows every brick column apart.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// brickColors cycles per row, top row first.
var brickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen}

// KeyLabels names the keys shown in the overlay hints.
type KeyLabels struct {
	Pause   string
	Restart string
	Exit    string
}

// DefaultKeyLabels matches the default key bindings.
func DefaultKeyLabels() KeyLabels {
	return KeyLabels{Pause: "SPACE", Restart: "R", Exit: "E"}
}

// withDefaults fills empty labels from DefaultKeyLabels.
func (k KeyLabels) withDefaults() KeyLabels {
	d := DefaultKeyLabels()
	if k.Pause == "" {
		k.Pause = d.Pause
	}
	if k.Restart == "" {
		k.Restart = d.Restart
	}
	if k.Exit == "" {
		k.Exit = d.Exit
	}
	return k
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderView(g.View(), g.labels, dst)
}

// RenderView draws a state snapshot: HUD on the first row, the walled
// arena below it, and an overlay box when paused or finished.
func RenderView(v View, labels KeyLabels, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	p := newProjector(v.Arena, dst.Width(), dst.Height())

	renderHUD(v, dst)
	dst.DrawBoxColored(p.box, core.ColorGray)

	for row := range BrickRows {
		color := brickColors[row%len(brickColors)]
		for col := range BrickCols {
			if !v.Grid.Present(row, col) {
				continue
			}
			p.fill(dst, BrickRect(row, col), BrickChar, color)
		}
	}

	p.fill(dst, v.Paddle, PaddleChar, core.ColorCyan)

	cx, cy := v.Ball.Center()
	if x, y := p.col(cx), p.row(cy); p.inner.Contains(x, y) {
		dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
	}

	renderOverlay(v, labels.withDefaults(), dst)
}

// renderHUD draws the title, remaining bricks and score.
func renderHUD(v View, dst *core.Screen) {
	dst.DrawText(1, 0, "BREAKOUT")

	bricks := fmt.Sprintf("Bricks: %d/%d", v.Grid.Remaining(), BrickRows*BrickCols)
	dst.DrawTextCentered(0, bricks)

	score := fmt.Sprintf("Score: %d", v.Score)
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorBrightYellow)
}

// renderOverlay draws the pause, win or game over box.
func renderOverlay(v View, labels KeyLabels, dst *core.Screen) {
	hint := fmt.Sprintf("Press %s to restart, %s to exit", labels.Restart, labels.Exit)
	switch v.Phase {
	case core.PhaseWon:
		drawCenteredBox(dst, core.ColorBrightYellow,
			"YOU WIN!",
			fmt.Sprintf("Score: %d", v.Score),
			hint)
	case core.PhaseLost:
		drawCenteredBox(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", v.Score),
			hint)
	default:
		if v.Paused {
			drawCenteredBox(dst, core.ColorRed, "PAUSED",
				fmt.Sprintf("Press %s to continue", labels.Pause))
		}
	}
}

// drawCenteredBox draws a centered message box, one line per entry with a
// blank line after the title.
func drawCenteredBox(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	centered := func(y int, text string, c core.Color) {
		x := boxX + (boxW-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	centered(boxY+1, title, color)
	for i, l := range lines {
		centered(boxY+3+i, l, core.ColorDefault)
	}
}

// projector maps arena pixels onto screen cells. The arena walls become the
// box border; the interior is scaled into the cells inside it.
type projector struct {
	interior core.Rect // arena interior in pixels
	box      core.Rect // wall box in cells
	inner    core.Rect // cells inside the box
}

func newProjector(a Arena, screenW, screenH int) projector {
	box := core.NewRect(0, 1, screenW, screenH-1)
	return projector{
		interior: a.Interior(),
		box:      box,
		inner:    core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2),
	}
}

// col maps an arena x coordinate to a screen column.
func (p projector) col(px int) int {
	return p.inner.X + (px-p.interior.X)*p.inner.W/p.interior.W
}

// row maps an arena y coordinate to a screen row.
func (p projector) row(py int) int {
	return p.inner.Y + (py-p.interior.Y)*p.inner.H/p.interior.H
}

// cells maps an arena rectangle to at least one screen cell.
func (p projector) cells(r core.Rect) core.Rect {
	x0, y0 := p.col(r.X), p.row(r.Y)
	x1, y1 := p.col(r.Right()), p.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// fill draws an arena rectangle clipped to the inside of the walls.
func (p projector) fill(dst *core.Screen, r core.Rect, glyph rune, color core.Color) {
	c := p.cells(r)
	for y := c.Y; y < c.Bottom(); y++ {
		for x := c.X; x < c.Right(); x++ {
			if p.inner.Contains(x, y) {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}
