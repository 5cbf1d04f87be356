package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestCanvas(w, h int) (*core.Screen, *Canvas) {
	screen := core.NewScreen(w, h)
	return screen, NewCanvas(screen, "#000000")
}

func TestCanvasFillRectOpaque(t *testing.T) {
	screen, c := newTestCanvas(10, 5)
	screen.Set(2, 1, 'x')

	c.FillRect(core.NewRect(1, 1, 3, 2), snake.Solid("#ff0000"))

	for y := range 5 {
		for x := range 10 {
			cell := screen.GetCell(x, y)
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			if inside && (cell.BG != "#ff0000" || cell.Rune != ' ') {
				t.Errorf("cell (%d,%d) = %+v, want red blank", x, y, cell)
			}
			if !inside && cell.BG != core.ColorDefault {
				t.Errorf("cell (%d,%d) painted outside rect: %+v", x, y, cell)
			}
		}
	}
}

func TestCanvasFillRectTranslucentKeepsText(t *testing.T) {
	screen, c := newTestCanvas(4, 1)
	screen.SetCell(0, 0, core.Cell{Rune: 'A', FG: "#ffffff", BG: "#000000"})

	c.FillRect(core.NewRect(0, 0, 4, 1), snake.Paint{Color: "#ffffff", Alpha: 0.5})

	cell := screen.GetCell(0, 0)
	if cell.Rune != 'A' {
		t.Errorf("rune = %q, want A", cell.Rune)
	}
	if cell.BG != "#808080" {
		t.Errorf("BG = %q, want #808080", cell.BG)
	}
	// Default background blends against the canvas background
	if got := screen.GetCell(1, 0).BG; got != "#808080" {
		t.Errorf("default BG blended to %q, want #808080", got)
	}
}

func TestCanvasZeroAlphaDrawsNothing(t *testing.T) {
	screen, c := newTestCanvas(6, 6)
	none := snake.Paint{Color: "#ffffff", Alpha: 0}

	c.FillRect(core.NewRect(0, 0, 6, 6), none)
	c.StrokeRect(core.NewRect(0, 0, 6, 6), none)
	c.FillCircle(core.Circle{X: 3, Y: 3, R: 2}, none)
	c.StrokeCircle(core.Circle{X: 3, Y: 3, R: 2}, none)
	c.DrawText(0, 0, "hi", snake.AlignLeft, none)

	if got := strings.TrimSpace(screen.String()); got != "" {
		t.Errorf("expected a blank screen, got %q", got)
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	screen, c := newTestCanvas(5, 3)

	c.StrokeRect(core.NewRect(0, 0, 5, 3), snake.Solid("#4ade80"))

	want := []string{"┌───┐", "│   │", "└───┘"}
	for y, row := range want {
		if got := screen.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if fg := screen.GetCell(0, 0).FG; fg != "#4ade80" {
		t.Errorf("border FG = %q", fg)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	screen, c := newTestCanvas(9, 9)

	c.FillCircle(core.Circle{X: 4.5, Y: 4.5, R: 2}, snake.Solid("#ff0000"))

	tests := []struct {
		x, y   int
		filled bool
	}{
		{4, 4, true},  // center
		{6, 4, true},  // distance 2
		{4, 2, true},  // distance 2
		{6, 6, false}, // distance 2.83
		{7, 4, false}, // distance 3
		{0, 0, false},
	}
	for _, tt := range tests {
		got := screen.GetCell(tt.x, tt.y).BG == "#ff0000"
		if got != tt.filled {
			t.Errorf("cell (%d,%d) filled = %v, want %v", tt.x, tt.y, got, tt.filled)
		}
	}
}

func TestCanvasSmallCircleBecomesGlyph(t *testing.T) {
	tests := []struct {
		r    float64
		want rune
	}{
		{0.5, '●'},
		{0.45, '●'},
		{0.35, '•'},
		{0.1, '·'},
	}

	for _, tt := range tests {
		screen, c := newTestCanvas(3, 3)
		screen.SetBG(1, 1, "#112233")

		c.FillCircle(core.Circle{X: 1.7, Y: 1.2, R: tt.r}, snake.Solid("#ffcc00"))

		cell := screen.GetCell(1, 1)
		if cell.Rune != tt.want {
			t.Errorf("r=%v: rune = %q, want %q", tt.r, cell.Rune, tt.want)
		}
		if cell.FG != "#ffcc00" || cell.BG != "#112233" {
			t.Errorf("r=%v: cell = %+v, want yellow on the existing background", tt.r, cell)
		}
	}
}

func TestCanvasFillCircleClipsOffscreen(t *testing.T) {
	screen, c := newTestCanvas(4, 4)

	// Must not panic
	c.FillCircle(core.Circle{X: -1, Y: -1, R: 3}, snake.Solid("#ff0000"))
	c.FillCircle(core.Circle{X: 10, Y: 10, R: 0.4}, snake.Solid("#ff0000"))

	if screen.GetCell(0, 0).BG != "#ff0000" {
		t.Error("expected the visible part of the circle to be drawn")
	}
}

func TestCanvasStrokeCircleLeavesCenter(t *testing.T) {
	screen, c := newTestCanvas(11, 11)

	c.StrokeCircle(core.Circle{X: 5.5, Y: 5.5, R: 3}, snake.Solid("#ffffff"))

	if got := screen.Get(5, 5); got != ' ' {
		t.Errorf("center rune = %q, want blank", got)
	}
	if got := screen.Get(8, 5); got != '·' {
		t.Errorf("edge rune = %q, want ·", got)
	}
}

func TestCanvasDrawTextAlign(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		align snake.Align
		want  string
	}{
		{"left", 1, snake.AlignLeft, " abc      "},
		{"center", 5, snake.AlignCenter, "   abc    "},
		{"right", 9, snake.AlignRight, "      abc "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, c := newTestCanvas(10, 2)
			c.DrawText(tt.x, 1.5, "abc", tt.align, snake.Solid("#ffffff"))

			if got := screen.Row(1); got != tt.want {
				t.Errorf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvasDrawTextKeepsBackground(t *testing.T) {
	screen, c := newTestCanvas(5, 1)
	c.FillRect(core.NewRect(0, 0, 5, 1), snake.Solid("#1e293b"))

	c.DrawText(0, 0, "ok", snake.AlignLeft, snake.Solid("#f1f5f9"))

	cell := screen.GetCell(0, 0)
	if cell.BG != "#1e293b" || cell.FG != "#f1f5f9" || cell.Rune != 'o' {
		t.Errorf("cell = %+v", cell)
	}
}

func TestCanvasRendersGame(t *testing.T) {
	screen, c := newTestCanvas(80, 24)
	game := snake.New(testSnakeConfig())
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})

	game.Render(c)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Level 1", "Best: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered game missing %q", want)
		}
	}
	if !strings.Contains(RenderScreen(screen), "Score: 0") {
		t.Error("styled output lost the HUD text")
	}
}
