package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			TileCount:         20,
			ScoreAreaHeight:   2,
			ControlAreaHeight: 9,
		},
		Speed: SpeedConfig{
			BaseMs:         200,
			MinMs:          80,
			GrowthStepMs:   3,
			GrowthCapMs:    100,
			LevelStepMs:    10,
			PointsPerLevel: 50,
		},
		Snake: BodyConfig{
			InitialLength: 3,
		},
		Controls: ControlsConfig{
			ButtonSize: 3,
			Padding:    1,
		},
		Palette: PaletteConfig{
			Background: "#1a1a1a",
			Border:     "#444444",
			Panel:      "#222222",
			Text:       "#ffffff",
			Accent:     "#FFC107",
			SnakeHead:  "#66BB6A",
			SnakeBody:  "#4CAF50",
			SnakeEdge:  "#388E3C",
			SnakeEyes:  "#000000",
			Button:     "#888888",
		},
		Foods: []FoodConfig{
			{Name: "normal", Color: "#FF5722", Points: 1, Probability: 0.7},
			{Name: "golden", Color: "#FFC107", Points: 2, Probability: 0.2},
			{Name: "rare", Color: "#E91E63", Points: 3, Probability: 0.1},
		},
		Particles: ParticlesConfig{
			EatCount:   15,
			DeathCount: 50,
			DeathColor: "#FF0000",
			Speed:      0.3,
			SizeMin:    0.2,
			SizeRange:  0.4,
			DecayMin:   0.02,
			DecayRange: 0.02,
			Shrink:     0.95,
		},
		Effects: EffectsConfig{
			DeathBurst: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
