package core

import (
	"strings"
)

// Cell is a single character cell with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D buffer of colored cells.
// Games draw into it; the platform turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// InBounds reports whether (x, y) addresses a cell.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at (x, y) keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the whole cell at (x, y).
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// SetBG changes only the background of the cell at (x, y).
func (s *Screen) SetBG(x, y int, bg Color) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x].BG = bg
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes text starting at (x, y) in the given color.
// The background under the text is preserved and overflow is clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.InBounds(x+i, y) {
			c := s.cells[y][x+i]
			c.Rune = r
			c.FG = fg
			s.cells[y][x+i] = c
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	s.DrawText((s.width-TextWidth(text))/2, y, text, fg)
}

// FillRect paints the background of every cell in r and blanks its rune.
func (s *Screen) FillRect(r Rect, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', BG: bg})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, fg Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.DrawText(r.X, r.Y, "┌", fg)
	s.DrawText(r.Right()-1, r.Y, "┐", fg)
	s.DrawText(r.X, r.Bottom()-1, "└", fg)
	s.DrawText(r.Right()-1, r.Bottom()-1, "┘", fg)
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.DrawText(x, r.Y, "─", fg)
		s.DrawText(x, r.Bottom()-1, "─", fg)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.DrawText(r.X, y, "│", fg)
		s.DrawText(r.Right()-1, y, "│", fg)
	}
}

// String returns the screen runes without color, one line per row.
// Used by screenshots and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// TextWidth returns the number of cells text occupies, one per rune.
func TextWidth(text string) int {
	return len([]rune(text))
}
