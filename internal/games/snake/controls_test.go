package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewLayout(t *testing.T) {
	grid := config.DefaultSnakeConfig().Grid

	tests := []struct {
		name         string
		w, h         int
		cell         int
		gridW, gridH int
	}{
		{"standard terminal", 80, 24, 1, 80, 13},
		{"large terminal", 200, 60, 2, 100, 24},
		{"huge terminal", 400, 109, 5, 80, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(grid, tt.w, tt.h)
			if l.CellSize != tt.cell || l.GridW != tt.gridW || l.GridH != tt.gridH {
				t.Errorf("layout = cell %d grid %dx%d, want cell %d grid %dx%d",
					l.CellSize, l.GridW, l.GridH, tt.cell, tt.gridW, tt.gridH)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	l := NewLayout(config.DefaultSnakeConfig().Grid, 200, 60)
	x, y := l.CellCenter(Point{X: 3, Y: 4})
	// cell size 2, HUD 2 rows
	if x != 7 || y != 11 {
		t.Errorf("center = (%v,%v), want (7,11)", x, y)
	}
}

func TestButtonLayout(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	l := NewLayout(cfg.Grid, 80, 24)
	buttons := l.Buttons(cfg.Controls)

	want := map[ButtonKind][2]float64{
		ButtonUp:    {40.5, 17.5},
		ButtonDown:  {40.5, 22.5},
		ButtonLeft:  {36.5, 20.5},
		ButtonRight: {44.5, 20.5},
		ButtonPause: {77.5, 22.5},
	}
	if len(buttons) != len(want) {
		t.Fatalf("expected %d buttons, got %d", len(want), len(buttons))
	}
	for _, b := range buttons {
		c := want[b.Kind]
		if b.Circle.X != c[0] || b.Circle.Y != c[1] {
			t.Errorf("%s at (%v,%v), want (%v,%v)", b.Kind, b.Circle.X, b.Circle.Y, c[0], c[1])
		}
		if b.Circle.R != 1.5 {
			t.Errorf("%s radius %v, want 1.5", b.Kind, b.Circle.R)
		}
	}
}

func TestHitTest(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	buttons := NewLayout(cfg.Grid, 80, 24).Buttons(cfg.Controls)

	tests := []struct {
		name   string
		x, y   float64
		want   ButtonKind
		wantOK bool
	}{
		{"up center", 40.5, 17.5, ButtonUp, true},
		{"up edge", 40.5, 16, ButtonUp, true},
		{"down", 40.5, 23.5, ButtonDown, true},
		{"left", 35.5, 20.5, ButtonLeft, true},
		{"right", 45.5, 21.5, ButtonRight, true},
		{"pause", 77.5, 22.5, ButtonPause, true},
		{"just outside up", 42.5, 17.5, 0, false},
		{"board", 10.5, 5.5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := HitTest(buttons, tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("hit = %v, want %v", ok, tt.wantOK)
			}
			if ok && b.Kind != tt.want {
				t.Errorf("hit %s, want %s", b.Kind, tt.want)
			}
		})
	}
}

func TestButtonDirection(t *testing.T) {
	tests := []struct {
		kind ButtonKind
		dir  Direction
		ok   bool
	}{
		{ButtonUp, DirUp, true},
		{ButtonDown, DirDown, true},
		{ButtonLeft, DirLeft, true},
		{ButtonRight, DirRight, true},
		{ButtonPause, 0, false},
	}

	for _, tt := range tests {
		dir, ok := tt.kind.Direction()
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("%s.Direction() = %v, %v", tt.kind, dir, ok)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: opposite is not an involution", d)
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Point{}) {
			t.Errorf("%s: deltas do not cancel: %v", d, sum)
		}
	}
}
