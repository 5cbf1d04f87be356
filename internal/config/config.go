// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

// SnakeConfig contains all tunables for the snake game.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Snake     BodyConfig      `yaml:"snake"`
	Controls  ControlsConfig  `yaml:"controls"`
	Palette   PaletteConfig   `yaml:"palette"`
	Foods     []FoodConfig    `yaml:"foods"`
	Particles ParticlesConfig `yaml:"particles"`
	Effects   EffectsConfig   `yaml:"effects"`
	Audio     AudioConfig     `yaml:"audio"`
}

// GridConfig defines how the screen is split into board, HUD and controls.
type GridConfig struct {
	TileCount         int `yaml:"tile_count"`          // Tiles across the shorter board side
	ScoreAreaHeight   int `yaml:"score_area_height"`   // Rows reserved for the HUD
	ControlAreaHeight int `yaml:"control_area_height"` // Rows reserved for the touch buttons
}

// SpeedConfig defines the tick interval policy, all durations in milliseconds.
type SpeedConfig struct {
	BaseMs         int `yaml:"base_ms"`
	MinMs          int `yaml:"min_ms"`
	GrowthStepMs   int `yaml:"growth_step_ms"` // Per segment grown beyond the initial length
	GrowthCapMs    int `yaml:"growth_cap_ms"`
	LevelStepMs    int `yaml:"level_step_ms"` // Per level above 1
	PointsPerLevel int `yaml:"points_per_level"`
}

// BodyConfig defines the starting snake.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// ControlsConfig defines the on-screen button geometry.
type ControlsConfig struct {
	ButtonSize float64 `yaml:"button_size"` // Diameter
	Padding    float64 `yaml:"padding"`
}

// PaletteConfig holds the "#RRGGBB" colors used by the renderer.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Panel      string `yaml:"panel"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	SnakeHead  string `yaml:"snake_head"`
	SnakeBody  string `yaml:"snake_body"`
	SnakeEdge  string `yaml:"snake_edge"`
	SnakeEyes  string `yaml:"snake_eyes"`
	Button     string `yaml:"button"`
}

// FoodConfig is one entry of the weighted food catalog.
type FoodConfig struct {
	Name        string  `yaml:"name"`
	Color       string  `yaml:"color"`
	Points      int     `yaml:"points"`
	Probability float64 `yaml:"probability"`
}

// ParticlesConfig defines burst sizes and particle motion.
type ParticlesConfig struct {
	EatCount   int     `yaml:"eat_count"`
	DeathCount int     `yaml:"death_count"`
	DeathColor string  `yaml:"death_color"`
	Speed      float64 `yaml:"speed"`      // Max velocity component, cells per frame
	SizeMin    float64 `yaml:"size_min"`   // Radius in cells
	SizeRange  float64 `yaml:"size_range"` // Added uniformly on top of SizeMin
	DecayMin   float64 `yaml:"decay_min"`  // Life lost per frame
	DecayRange float64 `yaml:"decay_range"`
	Shrink     float64 `yaml:"shrink"` // Size multiplier per frame
}

// EffectsConfig toggles optional visual effects.
type EffectsConfig struct {
	DeathBurst bool `yaml:"death_burst"`
}

// AudioConfig controls the sound backend.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 gain, 0 is unchanged, -1 is half
}
