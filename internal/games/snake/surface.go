package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Paint is a color with opacity in [0, 1].
type Paint struct {
	Color core.Color
	Alpha float64
}

// Solid returns a fully opaque paint.
func Solid(color string) Paint {
	return Paint{Color: core.Color(color), Alpha: 1}
}

// Align positions text relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing capability the renderer needs.
// Coordinates are continuous screen units; one unit is one terminal cell.
type Surface interface {
	FillRect(r core.Rect, p Paint)
	StrokeRect(r core.Rect, p Paint)
	FillCircle(c core.Circle, p Paint)
	StrokeCircle(c core.Circle, p Paint)
	DrawText(x, y float64, text string, align Align, p Paint)
}

// Audio is the sound capability the game drives.
type Audio interface {
	PlayBGM()
	PauseBGM()
	PlayEatSound()
	PlayGameOverSound()
}

type nopAudio struct{}

func (nopAudio) PlayBGM()           {}
func (nopAudio) PauseBGM()          {}
func (nopAudio) PlayEatSound()      {}
func (nopAudio) PlayGameOverSound() {}
