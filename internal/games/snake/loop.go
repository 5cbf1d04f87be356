package snake

import "time"

// Loop drives a Game from elapsed time. It fires at most one tick per call,
// once the accumulated time exceeds the game's current interval, and resets
// the accumulator whenever it fires. Effects advance on every call.
type Loop struct {
	game    *Game
	elapsed time.Duration
	last    time.Time
	started bool
}

// NewLoop creates a scheduler for g.
func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

// Advance adds dt to the accumulator and reports whether a tick fired.
func (l *Loop) Advance(dt time.Duration) bool {
	if dt > 0 {
		l.elapsed += dt
	}

	fired := false
	if l.elapsed > l.game.Interval() {
		l.game.Tick()
		l.elapsed = 0
		fired = true
	}

	l.game.UpdateEffects()
	return fired
}

// Frame advances by the time since the previous frame. The first frame only
// records the reference time.
func (l *Loop) Frame(now time.Time) bool {
	if !l.started {
		l.started = true
		l.last = now
		l.game.UpdateEffects()
		return false
	}
	dt := now.Sub(l.last)
	l.last = now
	return l.Advance(dt)
}

// Reset drops the accumulated time and the frame reference.
func (l *Loop) Reset() {
	l.elapsed = 0
	l.started = false
}
