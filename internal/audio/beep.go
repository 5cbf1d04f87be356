package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// note is one step of a synthesized melody. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	bgmMelody = []note{
		{262, 180 * time.Millisecond}, {330, 180 * time.Millisecond},
		{392, 180 * time.Millisecond}, {330, 180 * time.Millisecond},
		{220, 180 * time.Millisecond}, {262, 180 * time.Millisecond},
		{330, 180 * time.Millisecond}, {262, 180 * time.Millisecond},
		{0, 360 * time.Millisecond},
	}
	eatMelody = []note{
		{880, 50 * time.Millisecond}, {1320, 70 * time.Millisecond},
	}
	overMelody = []note{
		{440, 150 * time.Millisecond}, {370, 150 * time.Millisecond},
		{311, 150 * time.Millisecond}, {262, 400 * time.Millisecond},
	}
)

// mixerSink owns the mixer feeding the speaker. Cue state is only touched
// between lock and unlock, since the speaker streams from its own goroutine.
type mixerSink struct {
	mixer  *beep.Mixer
	lock   func()
	unlock func()
}

func (s *mixerSink) do(fn func()) {
	s.lock()
	defer s.unlock()
	fn()
}

// loopCue repeats a buffer until stopped. Pause keeps the position.
type loopCue struct {
	sink *mixerSink
	buf  *beep.Buffer
	vol  float64
	ctrl *beep.Ctrl
}

func (c *loopCue) Play() {
	c.sink.do(func() {
		if c.ctrl == nil {
			loop := beep.Loop(-1, c.buf.Streamer(0, c.buf.Len()))
			c.ctrl = &beep.Ctrl{Streamer: volume(loop, c.vol)}
			c.sink.mixer.Add(c.ctrl)
		}
		c.ctrl.Paused = false
	})
}

func (c *loopCue) Pause() {
	c.sink.do(func() {
		if c.ctrl != nil {
			c.ctrl.Paused = true
		}
	})
}

func (c *loopCue) Stop() {
	c.sink.do(func() {
		if c.ctrl != nil {
			c.ctrl.Streamer = nil
			c.ctrl = nil
		}
	})
}

// shotCue plays a buffer once per Play.
type shotCue struct {
	sink *mixerSink
	buf  *beep.Buffer
	ctrl *beep.Ctrl
}

func (c *shotCue) Play() {
	c.sink.do(func() {
		c.ctrl = &beep.Ctrl{Streamer: c.buf.Streamer(0, c.buf.Len())}
		c.sink.mixer.Add(c.ctrl)
	})
}

func (c *shotCue) Pause() {
	c.sink.do(func() {
		if c.ctrl != nil {
			c.ctrl.Paused = true
		}
	})
}

func (c *shotCue) Stop() {
	c.sink.do(func() {
		if c.ctrl != nil {
			c.ctrl.Streamer = nil
			c.ctrl = nil
		}
	})
}

// Open initializes the speaker and returns a manager playing synthesized
// cues. The returned close function releases the device. When audio is
// disabled it returns a silent manager and no error.
func Open(cfg config.AudioConfig) (*Manager, func(), error) {
	if !cfg.Enabled {
		return Nop(), func() {}, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return Nop(), func() {}, fmt.Errorf("audio: init speaker: %w", err)
	}

	sink := &mixerSink{mixer: &beep.Mixer{}, lock: speaker.Lock, unlock: speaker.Unlock}
	m, err := newBeepManager(sink)
	if err != nil {
		speaker.Close()
		return Nop(), func() {}, err
	}

	speaker.Play(volume(sink.mixer, cfg.Volume))

	closeFn := func() {
		m.StopAll()
		speaker.Clear()
		speaker.Close()
	}
	return m, closeFn, nil
}

func newBeepManager(sink *mixerSink) (*Manager, error) {
	bgm, err := synthesize(bgmMelody)
	if err != nil {
		return nil, fmt.Errorf("audio: synthesize bgm: %w", err)
	}
	eat, err := synthesize(eatMelody)
	if err != nil {
		return nil, fmt.Errorf("audio: synthesize eat cue: %w", err)
	}
	over, err := synthesize(overMelody)
	if err != nil {
		return nil, fmt.Errorf("audio: synthesize game over cue: %w", err)
	}

	return NewManager(
		&loopCue{sink: sink, buf: bgm, vol: -2},
		&shotCue{sink: sink, buf: eat},
		&shotCue{sink: sink, buf: over},
	), nil
}

// synthesize renders a melody of sine tones into a buffer.
func synthesize(melody []note) (*beep.Buffer, error) {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, volume(beep.Take(samples, tone), -1.5))
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Seq(parts...))
	return buf, nil
}

// volume applies a base-2 gain. Very low gains are treated as silence.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain, Silent: gain <= -10}
}
