// Package snake implements the snake game: a grid simulation advanced one
// cell per tick, weighted food rarity tiers, combo scoring, level-based speed
// and particle feedback. Time, drawing and sound are injected by the host.
package snake

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns the state of one player's snake session.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Game struct {
	cfg       config.SnakeConfig
	catalog   []FoodType
	speed     config.SpeedPolicy
	rng       *rand.Rand
	audio     Audio
	layout    Layout
	buttons   []Button
	particles *Particles
	state     State

	screenW, screenH int
	tooSmall         bool
	frame            uint64 // Host frames seen, drives animations
}

// Option customizes a Game.
type Option func(*Game)

// WithAudio sets the sound backend. Without it the game is silent.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithSeed seeds the game RNG for reproducible food and particles.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng.Seed(seed)
	}
}

// New creates a game for the given configuration. Call Reset before use.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		catalog: CatalogFromConfig(cfg.Foods),
		speed:   config.NewSpeedPolicy(cfg.Speed, cfg.Snake.InitialLength),
		rng:     rand.New(rand.NewSource(1)),
		audio:   nopAudio{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.particles = NewParticles(cfg.Particles, g.rng)
	return g
}

// Reset sizes the board for the host screen, reseeds and starts a new run.
// The session high score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.rng.Seed(cfg.Seed)
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.Init()
}

// Resize recomputes the layout. The snake is not moved; callers restart the
// run when the board changes size.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH
	g.layout = NewLayout(g.cfg.Grid, screenW, screenH)
	g.buttons = g.layout.Buttons(g.cfg.Controls)

	// The initial snake runs left from the center and needs a free cell ahead.
	centerX := g.layout.GridW / 2
	g.tooSmall = g.layout.GridH < 1 || centerX < g.cfg.Snake.InitialLength-1 || centerX+1 >= g.layout.GridW
}

// Init starts a new run: a centered snake heading right, zero score and
// combo, level 1, fresh food and background music.
func (g *Game) Init() {
	high := g.state.HighScore
	g.state = State{
		Direction:      DirRight,
		HighScore:      high,
		StartHighScore: high,
		Level:          1,
	}
	g.particles.Reset()

	if !g.tooSmall {
		centerX := g.layout.GridW / 2
		centerY := g.layout.GridH / 2
		g.state.Snake = make([]Point, 0, g.cfg.Snake.InitialLength)
		for i := range g.cfg.Snake.InitialLength {
			g.state.Snake = append(g.state.Snake, Point{X: centerX - i, Y: centerY})
		}
		g.spawnFood()
	}

	g.audio.PlayBGM()
}

// Tick advances the snake by one cell. It does nothing while the run is over
// or paused. Hitting a wall or the body ends the run before anything moves;
// the cell the tail is leaving counts as free unless the snake eats.
func (g *Game) Tick() {
	s := &g.state
	if s.IsGameOver || s.IsPaused || g.tooSmall || len(s.Snake) == 0 {
		return
	}
	s.Ticks++

	head := s.Head().Add(s.Direction.Delta())
	ate := s.Food != nil && head == s.Food.Point

	// The tail cell is free this tick unless the snake grows.
	body := s.Snake
	if !ate {
		body = body[:len(body)-1]
	}
	if !g.layout.InBounds(head) || slices.Contains(body, head) {
		g.endRun()
		return
	}

	s.Snake = slices.Insert(s.Snake, 0, head)
	if !ate {
		s.Snake = s.Snake[:len(s.Snake)-1]
		return
	}

	food := *s.Food
	s.Combo++
	s.Score += food.Type.Points * s.Combo
	s.HighScore = max(s.HighScore, s.Score)
	s.Level = g.speed.Level(s.Score)

	x, y := g.layout.CellCenter(food.Point)
	g.particles.EmitEat(x, y, food.Type.Color)
	g.audio.PlayEatSound()

	g.spawnFood()
}

// endRun marks the run over and plays the death feedback at the head.
func (g *Game) endRun() {
	g.state.IsGameOver = true
	g.audio.PlayGameOverSound()
	if g.cfg.Effects.DeathBurst {
		x, y := g.layout.CellCenter(g.state.Head())
		g.particles.EmitDeath(x, y)
	}
}

// spawnFood replaces the food. A board with no free cell ends the run as
// cleared instead of retrying forever.
func (g *Game) spawnFood() {
	food, err := GenerateFood(g.rng, g.catalog, g.state.Snake, g.layout.GridW, g.layout.GridH)
	if errors.Is(err, ErrBoardFull) {
		g.state.Food = nil
		g.state.BoardFull = true
		g.state.IsGameOver = true
		return
	}
	g.state.Food = &food
}

// Interval returns the current time between ticks.
func (g *Game) Interval() time.Duration {
	return g.speed.Interval(len(g.state.Snake), g.state.Level)
}

// Apply feeds one host frame of input into the game.
func (g *Game) Apply(in core.InputFrame) {
	for _, t := range in.Touches {
		g.Touch(t.Point())
	}

	if g.state.IsGameOver {
		if in.Has(core.ActionRestart) {
			g.Init()
		}
		return
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	switch {
	case in.Has(core.ActionUp):
		g.Steer(DirUp)
	case in.Has(core.ActionDown):
		g.Steer(DirDown)
	case in.Has(core.ActionLeft):
		g.Steer(DirLeft)
	case in.Has(core.ActionRight):
		g.Steer(DirRight)
	}
}

// UpdateEffects advances the particles and animations by one host frame.
func (g *Game) UpdateEffects() {
	g.frame++
	g.particles.Update()
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		GameOver:  g.state.IsGameOver,
		Paused:    g.state.IsPaused,
	}
}

// Current returns a copy of the full game state.
func (g *Game) Current() State {
	s := g.state
	s.Snake = slices.Clone(g.state.Snake)
	if g.state.Food != nil {
		f := *g.state.Food
		s.Food = &f
	}
	return s
}

// Layout returns the current board layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Buttons returns the on-screen controls.
func (g *Game) Buttons() []Button {
	return g.buttons
}

// Particles exposes the particle system.
func (g *Game) Particles() *Particles {
	return g.particles
}

// TooSmall reports whether the screen cannot hold a playable board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
