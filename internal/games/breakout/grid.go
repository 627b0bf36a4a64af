package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BrickStatus is the state of one grid cell. The zero value is a present
// brick, so a zero Grid is a full grid.
type BrickStatus uint8

const (
	BrickPresent BrickStatus = iota
	BrickDestroyed
)

// Grid is the fixed brick matrix indexed [row][col].
type Grid [BrickRows][BrickCols]BrickStatus

// Fill marks every brick present.
func (g *Grid) Fill() {
	*g = Grid{}
}

// Present reports whether the brick at (row, col) is still standing.
// Out-of-range cells are never present.
func (g Grid) Present(row, col int) bool {
	if row < 0 || row >= BrickRows || col < 0 || col >= BrickCols {
		return false
	}
	return g[row][col] == BrickPresent
}

// Destroy removes the brick at (row, col).
// Returns false if the brick was already gone or the cell is out of range.
func (g *Grid) Destroy(row, col int) bool {
	if !g.Present(row, col) {
		return false
	}
	g[row][col] = BrickDestroyed
	return true
}

// Remaining returns the number of present bricks.
func (g Grid) Remaining() int {
	count := 0
	for row := range BrickRows {
		for col := range BrickCols {
			if g[row][col] == BrickPresent {
				count++
			}
		}
	}
	return count
}

// Cleared reports whether every brick is destroyed.
func (g Grid) Cleared() bool {
	return g.Remaining() == 0
}

// FirstHit returns the first present brick intersecting r in row-major
// order (top to bottom, then left to right).
func (g Grid) FirstHit(r core.Rect) (row, col int, ok bool) {
	for row := range BrickRows {
		for col := range BrickCols {
			if g[row][col] != BrickPresent {
				continue
			}
			if r.Intersects(BrickRect(row, col)) {
				return row, col, true
			}
		}
	}
	return -1, -1, false
}

// BrickRect returns the arena rectangle of the brick at (row, col).
func BrickRect(row, col int) core.Rect {
	return core.NewRect(
		BrickOriginX+col*BrickPitchX,
		BrickOriginY+row*BrickPitchY,
		BrickWidth,
		BrickHeight,
	)
}
