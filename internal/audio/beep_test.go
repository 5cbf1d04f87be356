package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func testSink() *mixerSink {
	return &mixerSink{mixer: &beep.Mixer{}, lock: func() {}, unlock: func() {}}
}

// loudness streams n samples from the mixer and returns the peak amplitude.
func loudness(t *testing.T, m *beep.Mixer, n int) float64 {
	t.Helper()
	samples := make([][2]float64, n)
	m.Stream(samples)
	peak := 0.0
	for _, s := range samples {
		peak = max(peak, s[0], -s[0])
	}
	return peak
}

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		name   string
		melody []note
	}{
		{"bgm", bgmMelody},
		{"eat", eatMelody},
		{"game over", overMelody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := synthesize(tt.melody)
			if err != nil {
				t.Fatalf("synthesize: %v", err)
			}
			var total time.Duration
			for _, n := range tt.melody {
				total += n.dur
			}
			want := 0
			for _, n := range tt.melody {
				want += sampleRate.N(n.dur)
			}
			if buf.Len() != want {
				t.Errorf("buffer holds %d samples, want %d (%v)", buf.Len(), want, total)
			}
		})
	}
}

func TestLoopCuePauseAndResume(t *testing.T) {
	sink := testSink()
	m, err := newBeepManager(sink)
	if err != nil {
		t.Fatalf("newBeepManager: %v", err)
	}

	m.PlayBGM()
	if sink.mixer.Len() != 1 {
		t.Fatalf("expected bgm in the mixer, got %d streamers", sink.mixer.Len())
	}
	if loudness(t, sink.mixer, 512) == 0 {
		t.Error("expected sound while playing")
	}

	m.PauseBGM()
	if loudness(t, sink.mixer, 512) != 0 {
		t.Error("expected silence while paused")
	}

	m.PlayBGM()
	if sink.mixer.Len() != 1 {
		t.Errorf("resume should reuse the loop, got %d streamers", sink.mixer.Len())
	}
	if loudness(t, sink.mixer, 512) == 0 {
		t.Error("expected sound after resume")
	}
}

func TestShotCueRetrigger(t *testing.T) {
	sink := testSink()
	m, err := newBeepManager(sink)
	if err != nil {
		t.Fatalf("newBeepManager: %v", err)
	}

	m.PlayEatSound()
	m.PlayEatSound()
	if loudness(t, sink.mixer, 256) == 0 {
		t.Error("expected the eat cue to sound")
	}

	// Stream past the end of the cue; the finished one leaves the mixer.
	loudness(t, sink.mixer, sampleRate.N(time.Second))
	if loudness(t, sink.mixer, 256) != 0 {
		t.Error("expected silence once the cue finished")
	}
}
