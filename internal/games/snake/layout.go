package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout maps grid cells to screen coordinates.
// The screen is split top to bottom into HUD, board and control area.
type Layout struct {
	ScreenW, ScreenH  int
	CellSize          int
	ScoreAreaHeight   int
	ControlAreaHeight int
	GridW, GridH      int
}

// NewLayout sizes the board for a screen. The cell size is the smaller of the
// screen width and the height above the controls, divided by the tile count.
func NewLayout(grid config.GridConfig, screenW, screenH int) Layout {
	tiles := max(grid.TileCount, 1)
	cell := max(min(screenW, screenH-grid.ControlAreaHeight)/tiles, 1)

	boardH := screenH - grid.ControlAreaHeight - grid.ScoreAreaHeight
	return Layout{
		ScreenW:           screenW,
		ScreenH:           screenH,
		CellSize:          cell,
		ScoreAreaHeight:   grid.ScoreAreaHeight,
		ControlAreaHeight: grid.ControlAreaHeight,
		GridW:             max(screenW/cell, 0),
		GridH:             max(boardH/cell, 0),
	}
}

// InBounds reports whether p is a cell of the board.
func (l Layout) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.GridW && p.Y >= 0 && p.Y < l.GridH
}

// CellCenter returns the screen coordinates of the center of cell p.
func (l Layout) CellCenter(p Point) (float64, float64) {
	cs := float64(l.CellSize)
	return float64(p.X)*cs + cs/2, float64(p.Y)*cs + float64(l.ScoreAreaHeight) + cs/2
}

// Board returns the screen rectangle between the HUD and the controls.
func (l Layout) Board() core.Rect {
	return core.NewRect(0, l.ScoreAreaHeight, l.ScreenW, l.ScreenH-l.ControlAreaHeight-l.ScoreAreaHeight)
}

// ScoreArea returns the HUD rectangle.
func (l Layout) ScoreArea() core.Rect {
	return core.NewRect(0, 0, l.ScreenW, l.ScoreAreaHeight)
}

// ControlArea returns the rectangle holding the touch buttons.
func (l Layout) ControlArea() core.Rect {
	return core.NewRect(0, l.ScreenH-l.ControlAreaHeight, l.ScreenW, l.ControlAreaHeight)
}
