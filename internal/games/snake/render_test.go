package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type circleOp struct {
	circle core.Circle
	paint  Paint
	stroke bool
}

type textOp struct {
	x, y  float64
	text  string
	align Align
	paint Paint
}

// fakeSurface records draw calls.
type fakeSurface struct {
	rects   []core.Rect
	circles []circleOp
	texts   []textOp
}

func (s *fakeSurface) FillRect(r core.Rect, _ Paint)   { s.rects = append(s.rects, r) }
func (s *fakeSurface) StrokeRect(r core.Rect, _ Paint) { s.rects = append(s.rects, r) }

func (s *fakeSurface) FillCircle(c core.Circle, p Paint) {
	s.circles = append(s.circles, circleOp{circle: c, paint: p})
}

func (s *fakeSurface) StrokeCircle(c core.Circle, p Paint) {
	s.circles = append(s.circles, circleOp{circle: c, paint: p, stroke: true})
}

func (s *fakeSurface) DrawText(x, y float64, text string, align Align, p Paint) {
	s.texts = append(s.texts, textOp{x: x, y: y, text: text, align: align, paint: p})
}

func (s *fakeSurface) text(substr string) (textOp, bool) {
	for _, op := range s.texts {
		if strings.Contains(op.text, substr) {
			return op, true
		}
	}
	return textOp{}, false
}

func render(g *Game) *fakeSurface {
	s := &fakeSurface{}
	g.Render(s)
	return s
}

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Score = 12
	g.state.HighScore = 40
	g.state.Level = 1

	s := render(g)

	for _, want := range []string{"Score: 12", "Best: 40", "Level 1"} {
		op, ok := s.text(want)
		if !ok {
			t.Errorf("missing %q", want)
			continue
		}
		if op.y != 0.5 {
			t.Errorf("%q drawn on y=%v, want the HUD row", want, op.y)
		}
	}
	if _, ok := s.text("combo"); ok {
		t.Error("combo banner shown without a combo")
	}
	if _, ok := s.text("Paused"); ok {
		t.Error("overlay shown while playing")
	}
}

func TestRenderComboBanner(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Combo = 3

	s := render(g)

	op, ok := s.text("3 combo!")
	if !ok {
		t.Fatal("missing combo banner")
	}
	if op.paint.Color != core.Color(g.cfg.Palette.Accent) {
		t.Errorf("combo color %q", op.paint.Color)
	}
}

func TestRenderSnakeAndFood(t *testing.T) {
	g, _ := newTestGame(t)
	place(g, []Point{{5, 5}, {4, 5}, {3, 5}}, DirRight, foodAt(9, 5, onePoint))
	pal := g.cfg.Palette

	s := render(g)

	var head, body, food, halo int
	for _, c := range s.circles {
		switch {
		case c.paint.Color == core.Color(pal.SnakeHead):
			head++
			if c.circle.X != 5.5 || c.circle.Y != 7.5 {
				t.Errorf("head drawn at (%v,%v)", c.circle.X, c.circle.Y)
			}
		case c.paint.Color == core.Color(pal.SnakeBody):
			body++
		case c.paint.Color == core.Color(onePoint.Color) && c.stroke:
			halo++
			if c.paint.Alpha != 0.5 {
				t.Errorf("halo alpha %v", c.paint.Alpha)
			}
		case c.paint.Color == core.Color(onePoint.Color):
			food++
		}
	}
	if head != 1 || body != 2 || food != 1 || halo != 1 {
		t.Errorf("head=%d body=%d food=%d halo=%d, want 1 2 1 1", head, body, food, halo)
	}
}

func TestRenderButtons(t *testing.T) {
	g, _ := newTestGame(t)

	s := render(g)
	for _, icon := range []string{"↑", "↓", "←", "→", "⏸"} {
		if _, ok := s.text(icon); !ok {
			t.Errorf("missing button icon %q", icon)
		}
	}

	g.TogglePause()
	s = render(g)
	if _, ok := s.text("▶"); !ok {
		t.Error("paused game should show the resume icon")
	}
	if _, ok := s.text("Paused"); !ok {
		t.Error("missing pause overlay")
	}
}

func TestRenderGameOver(t *testing.T) {
	tests := []struct {
		name       string
		startHigh  int
		score      int
		wantRecord bool
	}{
		{"new record", 5, 9, true},
		{"below record", 20, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.state.IsGameOver = true
			g.state.StartHighScore = tt.startHigh
			g.state.Score = tt.score
			g.state.HighScore = max(tt.startHigh, tt.score)

			s := render(g)

			if _, ok := s.text("Game Over!"); !ok {
				t.Error("missing game over title")
			}
			if _, ok := s.text("Final score: 9"); !ok {
				t.Error("missing final score")
			}
			if _, ok := s.text("New record!"); ok != tt.wantRecord {
				t.Errorf("new record shown = %v, want %v", ok, tt.wantRecord)
			}
			if _, ok := s.text("restart"); !ok {
				t.Error("missing restart hint")
			}
		})
	}
}

func TestRenderBoardCleared(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.IsGameOver = true
	g.state.BoardFull = true
	g.state.Food = nil

	s := render(g)

	if _, ok := s.text("Board cleared!"); !ok {
		t.Error("missing board cleared title")
	}
	if _, ok := s.text("Game Over!"); ok {
		t.Error("cleared board should not read as a loss")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 8})

	s := render(g)

	if _, ok := s.text("too small"); !ok {
		t.Error("missing too small notice")
	}
	if len(s.circles) != 0 {
		t.Errorf("nothing but the notice should be drawn, got %d circles", len(s.circles))
	}
}
