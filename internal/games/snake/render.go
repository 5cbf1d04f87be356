package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the whole frame onto s: panels, HUD, snake, food, particles,
// controls and the pause or game over overlay.
func (g *Game) Render(s Surface) {
	pal := g.cfg.Palette
	l := g.layout
	screen := core.NewRect(0, 0, l.ScreenW, l.ScreenH)

	s.FillRect(screen, Solid(pal.Background))

	if g.tooSmall {
		g.renderTooSmall(s)
		return
	}

	// Border sits on the last HUD row and the first control row.
	s.StrokeRect(core.NewRect(0, l.ScoreAreaHeight-1, l.ScreenW, l.ScreenH-l.ControlAreaHeight-l.ScoreAreaHeight+2), Solid(pal.Border))
	s.FillRect(core.NewRect(0, l.ScreenH-l.ControlAreaHeight+1, l.ScreenW, l.ControlAreaHeight-1), Solid(pal.Panel))
	s.FillRect(core.NewRect(0, 0, l.ScreenW, l.ScoreAreaHeight-1), Solid(pal.Panel))

	g.renderHUD(s)
	g.renderFoodHalo(s)
	g.renderSnake(s)
	g.renderFood(s)
	g.particles.Draw(s)
	g.renderButtons(s)
	g.renderOverlay(s)
}

func (g *Game) renderHUD(s Surface) {
	pal := g.cfg.Palette
	l := g.layout
	st := &g.state
	y := midRow(0, l.ScoreAreaHeight-1)
	text := Solid(pal.Text)

	s.DrawText(2, y, fmt.Sprintf("Score: %d", st.Score), AlignLeft, text)
	s.DrawText(float64(l.ScreenW)/2, y, fmt.Sprintf("Level %d", st.Level), AlignCenter, text)
	s.DrawText(float64(l.ScreenW-2), y, fmt.Sprintf("Best: %d", st.HighScore), AlignRight, text)

	if st.Combo > 1 {
		s.DrawText(float64(l.ScreenW)/2, float64(l.ScoreAreaHeight)+0.5, fmt.Sprintf("%d combo!", st.Combo), AlignCenter, Solid(pal.Accent))
	}
}

func (g *Game) renderSnake(s Surface) {
	pal := g.cfg.Palette
	cs := float64(g.layout.CellSize)

	// Tail first so the head stays on top.
	for i := len(g.state.Snake) - 1; i >= 0; i-- {
		x, y := g.layout.CellCenter(g.state.Snake[i])
		if i > 0 {
			s.FillCircle(core.Circle{X: x, Y: y, R: cs / 2 * 0.9}, Solid(pal.SnakeBody))
			if cs >= 3 {
				s.StrokeCircle(core.Circle{X: x, Y: y, R: cs / 2 * 0.9}, Solid(pal.SnakeEdge))
			}
			continue
		}

		s.FillCircle(core.Circle{X: x, Y: y, R: cs / 2}, Solid(pal.SnakeHead))
		if cs >= 3 {
			eye := cs / 6
			s.FillCircle(core.Circle{X: x - eye*2, Y: y, R: eye}, Solid(pal.SnakeEyes))
			s.FillCircle(core.Circle{X: x + eye*2, Y: y, R: eye}, Solid(pal.SnakeEyes))
		}
	}
}

// renderFoodHalo draws the pulsing ring around the food. It goes under the
// snake so the ring never hides a segment.
func (g *Game) renderFoodHalo(s Surface) {
	f := g.state.Food
	if f == nil {
		return
	}
	cs := float64(g.layout.CellSize)
	x, y := g.layout.CellCenter(f.Point)
	r := cs/2 + math.Sin(float64(g.frame)/12)*cs*0.25
	s.StrokeCircle(core.Circle{X: x, Y: y, R: r}, Paint{Color: core.Color(f.Type.Color), Alpha: 0.5})
}

func (g *Game) renderFood(s Surface) {
	f := g.state.Food
	if f == nil {
		return
	}
	cs := float64(g.layout.CellSize)
	x, y := g.layout.CellCenter(f.Point)
	s.FillCircle(core.Circle{X: x, Y: y, R: cs / 2 * 0.9}, Solid(f.Type.Color))
}

func (g *Game) renderButtons(s Surface) {
	pal := g.cfg.Palette
	for _, b := range g.buttons {
		s.FillCircle(b.Circle, Paint{Color: core.Color(pal.Button), Alpha: 0.3})
		s.StrokeCircle(b.Circle, Paint{Color: core.Color(pal.Text), Alpha: 0.5})

		icon := b.Icon
		if b.Kind == ButtonPause && g.state.IsPaused {
			icon = "▶"
		}
		s.DrawText(b.Circle.X, b.Circle.Y, icon, AlignCenter, Solid(pal.Text))
	}
}

func (g *Game) renderOverlay(s Surface) {
	st := &g.state
	if !st.IsGameOver && !st.IsPaused {
		return
	}
	pal := g.cfg.Palette
	l := g.layout
	cx, cy := float64(l.ScreenW)/2, float64(l.ScreenH)/2
	text := Solid(pal.Text)

	s.FillRect(core.NewRect(0, 0, l.ScreenW, l.ScreenH), Paint{Color: "#000000", Alpha: 0.7})

	switch {
	case st.BoardFull:
		s.DrawText(cx, cy-2, "Board cleared!", AlignCenter, Solid(pal.Accent))
		s.DrawText(cx, cy, fmt.Sprintf("Final score: %d", st.Score), AlignCenter, text)
	case st.IsGameOver:
		s.DrawText(cx, cy-2, "Game Over!", AlignCenter, text)
		s.DrawText(cx, cy, fmt.Sprintf("Final score: %d", st.Score), AlignCenter, text)
	default:
		s.DrawText(cx, cy-2, "Paused", AlignCenter, text)
		s.DrawText(cx, cy+2, "Tap ⏸ or press P to resume", AlignCenter, text)
		return
	}

	if st.NewRecord() {
		s.DrawText(cx, cy+1, "New record!", AlignCenter, Solid(pal.Accent))
	}
	s.DrawText(cx, cy+3, "Tap anywhere or press R to restart", AlignCenter, text)
}

func (g *Game) renderTooSmall(s Surface) {
	pal := g.cfg.Palette
	cx, cy := float64(g.layout.ScreenW)/2, float64(g.layout.ScreenH)/2
	s.DrawText(cx, cy-1, "Window too small", AlignCenter, Solid(pal.Accent))
	s.DrawText(cx, cy, "Resize the terminal to play", AlignCenter, Solid(pal.Text))
}

// midRow returns the vertical center of a band of rows, snapped to a row.
func midRow(top, height int) float64 {
	return float64(top+max(height-1, 0)/2) + 0.5
}
