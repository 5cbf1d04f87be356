package tui

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Canvas rasterizes the game's drawing calls onto a Screen. One screen unit
// is one terminal cell; shapes smaller than a cell become glyphs.
type Canvas struct {
	screen     *core.Screen
	background core.Color
}

// NewCanvas creates a canvas over screen. Translucent paint is blended
// against background where a cell has no color of its own.
func NewCanvas(screen *core.Screen, background core.Color) *Canvas {
	return &Canvas{screen: screen, background: background}
}

var _ snake.Surface = (*Canvas)(nil)

// FillRect paints the cells of r. Opaque paint replaces the cells;
// translucent paint tints both colors and keeps the runes.
func (c *Canvas) FillRect(r core.Rect, p snake.Paint) {
	if p.Alpha <= 0 {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !c.screen.InBounds(x, y) {
				continue
			}
			if p.Alpha >= 1 {
				c.screen.SetCell(x, y, core.Cell{Rune: ' ', BG: p.Color})
				continue
			}
			cell := c.screen.GetCell(x, y)
			cell.BG = c.blend(cell.BG, p.Color, p.Alpha)
			cell.FG = c.blend(cell.FG, p.Color, p.Alpha)
			c.screen.SetCell(x, y, cell)
		}
	}
}

// StrokeRect draws the outline of r with box-drawing characters.
func (c *Canvas) StrokeRect(r core.Rect, p snake.Paint) {
	if p.Alpha <= 0 {
		return
	}
	c.screen.DrawBox(r, c.blend(c.background, p.Color, p.Alpha))
}

// FillCircle fills the cells whose centers fall inside the circle. A circle
// narrower than a cell is drawn as a dot glyph sized by its radius.
func (c *Canvas) FillCircle(circle core.Circle, p snake.Paint) {
	if p.Alpha <= 0 || circle.R <= 0 {
		return
	}

	if circle.R < 1 {
		x, y := int(math.Floor(circle.X)), int(math.Floor(circle.Y))
		c.glyph(x, y, dotRune(circle.R), p)
		return
	}

	c.eachCell(circle, circle.R+0.5, func(x, y int, d float64) {
		if d > circle.R {
			return
		}
		cell := c.screen.GetCell(x, y)
		if p.Alpha >= 1 {
			cell = core.Cell{Rune: ' ', BG: p.Color}
		} else {
			cell.BG = c.blend(cell.BG, p.Color, p.Alpha)
		}
		c.screen.SetCell(x, y, cell)
	})
}

// StrokeCircle marks the cells within half a cell of the circle's edge.
func (c *Canvas) StrokeCircle(circle core.Circle, p snake.Paint) {
	if p.Alpha <= 0 || circle.R <= 0 {
		return
	}
	c.eachCell(circle, circle.R+0.5, func(x, y int, d float64) {
		if math.Abs(d-circle.R) <= 0.5 {
			c.glyph(x, y, '·', p)
		}
	})
}

// DrawText writes text on the row containing y, aligned on x.
func (c *Canvas) DrawText(x, y float64, text string, align snake.Align, p snake.Paint) {
	if p.Alpha <= 0 {
		return
	}
	w := float64(core.TextWidth(text))
	switch align {
	case snake.AlignCenter:
		x -= w / 2
	case snake.AlignRight:
		x -= w
	}
	col, row := int(math.Floor(x)), int(math.Floor(y))
	bg := c.screen.GetCell(col, row).BG
	c.screen.DrawText(col, row, text, c.blend(bg, p.Color, p.Alpha))
}

// glyph sets the rune of one cell, keeping its background.
func (c *Canvas) glyph(x, y int, r rune, p snake.Paint) {
	if !c.screen.InBounds(x, y) {
		return
	}
	cell := c.screen.GetCell(x, y)
	cell.Rune = r
	cell.FG = c.blend(cell.BG, p.Color, p.Alpha)
	c.screen.SetCell(x, y, cell)
}

// eachCell calls fn for every on-screen cell within reach of the circle's
// center, with the distance from the center to the cell's center.
func (c *Canvas) eachCell(circle core.Circle, reach float64, fn func(x, y int, d float64)) {
	x0, x1 := int(math.Floor(circle.X-reach)), int(math.Ceil(circle.X+reach))
	y0, y1 := int(math.Floor(circle.Y-reach)), int(math.Ceil(circle.Y+reach))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !c.screen.InBounds(x, y) {
				continue
			}
			fn(x, y, core.Distance(circle.X, circle.Y, float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// blend mixes over onto under with the given opacity.
func (c *Canvas) blend(under, over core.Color, alpha float64) core.Color {
	if alpha >= 1 || over.IsDefault() {
		return over
	}
	if under.IsDefault() {
		under = c.background
	}
	base, err := colorful.Hex(string(under))
	if err != nil {
		return over
	}
	top, err := colorful.Hex(string(over))
	if err != nil {
		return over
	}
	return core.Color(base.BlendRgb(top, alpha).Clamped().Hex())
}

// dotRune picks a glyph whose visual weight matches a sub-cell radius.
func dotRune(r float64) rune {
	switch {
	case r >= 0.45:
		return '●'
	case r >= 0.3:
		return '•'
	default:
		return '·'
	}
}
