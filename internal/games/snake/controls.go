package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ButtonKind identifies an on-screen control.
type ButtonKind int

const (
	ButtonUp ButtonKind = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonPause
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Direction returns the heading a directional button requests.
func (k ButtonKind) Direction() (Direction, bool) {
	switch k {
	case ButtonUp:
		return DirUp, true
	case ButtonDown:
		return DirDown, true
	case ButtonLeft:
		return DirLeft, true
	case ButtonRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Button is a circular touch target.
type Button struct {
	Kind   ButtonKind
	Circle core.Circle
	Icon   string
}

// Buttons lays out the four arrows as a cross in the middle of the control
// area and the pause button at its bottom right. Centers are snapped to cell
// centers so every button is drawn symmetrically on a character grid.
func (l Layout) Buttons(ctl config.ControlsConfig) []Button {
	size, pad := ctl.ButtonSize, ctl.Padding
	w, h := float64(l.ScreenW), float64(l.ScreenH)
	top := h - float64(l.ControlAreaHeight)
	r := size / 2

	button := func(kind ButtonKind, x, y float64, icon string) Button {
		return Button{
			Kind:   kind,
			Circle: core.Circle{X: snap(x + r), Y: snap(y + r), R: r},
			Icon:   icon,
		}
	}

	return []Button{
		button(ButtonUp, w/2-size/2, top+pad, "↑"),
		button(ButtonDown, w/2-size/2, top+pad*3+size, "↓"),
		button(ButtonLeft, w/2-size-pad*2.5, top+pad*2+size/2, "←"),
		button(ButtonRight, w/2+size-pad/2, top+pad*2+size/2, "→"),
		button(ButtonPause, w-size-pad, top+pad*3+size, "⏸"),
	}
}

// HitTest returns the first button whose circle contains (x, y).
func HitTest(buttons []Button, x, y float64) (Button, bool) {
	for _, b := range buttons {
		if b.Circle.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

func snap(v float64) float64 {
	return math.Floor(v) + 0.5
}

// Steer requests a new heading. Reversing onto the body is refused: the
// reverse of the current heading, and any turn that would put the head back
// on the neck before the next tick.
func (g *Game) Steer(dir Direction) bool {
	s := &g.state
	if s.IsGameOver || dir == s.Direction || dir == s.Direction.Opposite() {
		return false
	}
	if len(s.Snake) > 1 && s.Head().Add(dir.Delta()) == s.Snake[1] {
		return false
	}
	s.Direction = dir
	return true
}

// TogglePause flips the pause flag and pauses or resumes the music.
// It has no effect once the run is over.
func (g *Game) TogglePause() {
	s := &g.state
	if s.IsGameOver {
		return
	}
	s.IsPaused = !s.IsPaused
	if s.IsPaused {
		g.audio.PauseBGM()
	} else {
		g.audio.PlayBGM()
	}
}

// Touch handles a press at screen coordinates. After game over any press
// restarts; otherwise a press on a button steers or toggles pause.
func (g *Game) Touch(x, y float64) {
	if g.state.IsGameOver {
		g.Init()
		return
	}
	b, ok := HitTest(g.buttons, x, y)
	if !ok {
		return
	}
	if b.Kind == ButtonPause {
		g.TogglePause()
		return
	}
	if dir, ok := b.Kind.Direction(); ok {
		g.Steer(dir)
	}
}
