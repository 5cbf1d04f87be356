package core

// RuntimeConfig contains what the host knows when a game is (re)started.
// Games size their board from the screen and seed their RNG from Seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed, 0 means derive from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the host-facing summary of a running game.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
}
