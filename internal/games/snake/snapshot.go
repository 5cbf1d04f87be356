package snake

// Phase is the coarse state of a run.
type Phase string

const (
	PhasePlaying      Phase = "playing"
	PhasePaused       Phase = "paused"
	PhaseGameOver     Phase = "game_over"
	PhaseBoardCleared Phase = "board_cleared"
	PhaseTooSmall     Phase = "paused_small_window"
)

// Snapshot captures the comparable parts of a game for tests and diagnostics.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Combo     int
	Level     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	HasFood   bool
	FoodX     int
	FoodY     int
	FoodType  string
	Particles int
	GridW     int
	GridH     int
}

// Phase returns the current phase of the run.
func (g *Game) Phase() Phase {
	switch {
	case g.tooSmall:
		return PhaseTooSmall
	case g.state.BoardFull:
		return PhaseBoardCleared
	case g.state.IsGameOver:
		return PhaseGameOver
	case g.state.IsPaused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	snap := Snapshot{
		Tick:      s.Ticks,
		Phase:     g.Phase(),
		Score:     s.Score,
		HighScore: s.HighScore,
		Combo:     s.Combo,
		Level:     s.Level,
		SnakeLen:  len(s.Snake),
		Dir:       s.Direction,
		Particles: g.particles.Len(),
		GridW:     g.layout.GridW,
		GridH:     g.layout.GridH,
	}
	if len(s.Snake) > 0 {
		snap.HeadX, snap.HeadY = s.Snake[0].X, s.Snake[0].Y
	}
	if s.Food != nil {
		snap.HasFood = true
		snap.FoodX, snap.FoodY = s.Food.X, s.Food.Y
		snap.FoodType = s.Food.Type.Name
	}
	return snap
}
