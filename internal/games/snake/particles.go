package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Particle is a short-lived visual effect in screen coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  string
	Size   float64 // Radius
	Life   float64 // 1 when emitted, removed once it reaches 0
	Decay  float64 // Life lost per update
}

// Particles owns the live particles and emits bursts.
type Particles struct {
	cfg  config.ParticlesConfig
	rng  *rand.Rand
	list []Particle
}

// NewParticles creates an empty particle system.
func NewParticles(cfg config.ParticlesConfig, rng *rand.Rand) *Particles {
	return &Particles{cfg: cfg, rng: rng}
}

// Emit adds count particles at (x, y) with random velocity, size and decay.
func (ps *Particles) Emit(x, y float64, color string, count int) {
	for range count {
		ps.list = append(ps.list, Particle{
			X:     x,
			Y:     y,
			VX:    (ps.rng.Float64()*2 - 1) * ps.cfg.Speed,
			VY:    (ps.rng.Float64()*2 - 1) * ps.cfg.Speed,
			Color: color,
			Size:  ps.rng.Float64()*ps.cfg.SizeRange + ps.cfg.SizeMin,
			Life:  1.0,
			Decay: ps.rng.Float64()*ps.cfg.DecayRange + ps.cfg.DecayMin,
		})
	}
}

// EmitEat emits the small burst shown when food is eaten.
func (ps *Particles) EmitEat(x, y float64, color string) {
	ps.Emit(x, y, color, ps.cfg.EatCount)
}

// EmitDeath emits the large burst shown when the run ends.
func (ps *Particles) EmitDeath(x, y float64) {
	ps.Emit(x, y, ps.cfg.DeathColor, ps.cfg.DeathCount)
}

// Update advances every particle by one frame and drops the spent ones.
func (ps *Particles) Update() {
	n := 0
	for _, p := range ps.list {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
		p.Size *= ps.cfg.Shrink
		if p.Life > 0 {
			ps.list[n] = p
			n++
		}
	}
	clear(ps.list[n:])
	ps.list = ps.list[:n]
}

// Draw renders each particle with opacity equal to its remaining life.
func (ps *Particles) Draw(s Surface) {
	for _, p := range ps.list {
		s.FillCircle(core.Circle{X: p.X, Y: p.Y, R: p.Size}, Paint{Color: core.Color(p.Color), Alpha: p.Life})
	}
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.list)
}

// All returns the live particles. The slice is only valid until the next Update.
func (ps *Particles) All() []Particle {
	return ps.list
}

// Reset removes every particle.
func (ps *Particles) Reset() {
	ps.list = ps.list[:0]
}
