// Package audio provides the three sound cues of the game: looping
// background music, the eat blip and the game over tone.
package audio

// Cue is a single playable sound.
type Cue interface {
	Play()
	Pause()
	Stop()
}

// Manager routes game events to cues. A nil Manager or a nil cue is silent.
type Manager struct {
	bgm  Cue
	eat  Cue
	over Cue
}

// NewManager creates a manager over the given cues. Any of them may be nil.
func NewManager(bgm, eat, over Cue) *Manager {
	return &Manager{bgm: bgm, eat: eat, over: over}
}

// Nop returns a manager without cues.
func Nop() *Manager {
	return &Manager{}
}

// PlayBGM starts or resumes the background loop.
func (m *Manager) PlayBGM() {
	if m == nil || m.bgm == nil {
		return
	}
	m.bgm.Play()
}

// PauseBGM pauses the background loop at its current position.
func (m *Manager) PauseBGM() {
	if m == nil || m.bgm == nil {
		return
	}
	m.bgm.Pause()
}

// PlayEatSound restarts the eat cue from the beginning, so rapid eats each
// get their own blip.
func (m *Manager) PlayEatSound() {
	if m == nil || m.eat == nil {
		return
	}
	m.eat.Stop()
	m.eat.Play()
}

// PlayGameOverSound plays the game over cue once.
func (m *Manager) PlayGameOverSound() {
	if m == nil || m.over == nil {
		return
	}
	m.over.Play()
}

// StopAll silences every cue.
func (m *Manager) StopAll() {
	if m == nil {
		return
	}
	for _, c := range []Cue{m.bgm, m.eat, m.over} {
		if c != nil {
			c.Stop()
		}
	}
}
