package audio

import (
	"reflect"
	"testing"
)

type fakeCue struct {
	name  string
	calls *[]string
}

func (c fakeCue) Play()  { *c.calls = append(*c.calls, c.name+".play") }
func (c fakeCue) Pause() { *c.calls = append(*c.calls, c.name+".pause") }
func (c fakeCue) Stop()  { *c.calls = append(*c.calls, c.name+".stop") }

func TestManagerCalls(t *testing.T) {
	tests := []struct {
		name string
		fn   func(m *Manager)
		want []string
	}{
		{"play bgm", (*Manager).PlayBGM, []string{"bgm.play"}},
		{"pause bgm", (*Manager).PauseBGM, []string{"bgm.pause"}},
		{"eat restarts", (*Manager).PlayEatSound, []string{"eat.stop", "eat.play"}},
		{"game over", (*Manager).PlayGameOverSound, []string{"over.play"}},
		{"stop all", (*Manager).StopAll, []string{"bgm.stop", "eat.stop", "over.stop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			m := NewManager(
				fakeCue{"bgm", &calls},
				fakeCue{"eat", &calls},
				fakeCue{"over", &calls},
			)
			tt.fn(m)
			if !reflect.DeepEqual(calls, tt.want) {
				t.Errorf("calls = %v, want %v", calls, tt.want)
			}
		})
	}
}

func TestManagerNilSafe(t *testing.T) {
	var nilManager *Manager
	for _, m := range []*Manager{nilManager, Nop(), NewManager(nil, nil, nil)} {
		m.PlayBGM()
		m.PauseBGM()
		m.PlayEatSound()
		m.PlayGameOverSound()
		m.StopAll()
	}
}

func TestManagerPartialCues(t *testing.T) {
	var calls []string
	m := NewManager(nil, fakeCue{"eat", &calls}, nil)

	m.PlayBGM()
	m.PlayEatSound()
	m.PlayGameOverSound()

	want := []string{"eat.stop", "eat.play"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}
