package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// probabilityTolerance absorbs float rounding in hand-written catalogs.
const probabilityTolerance = 1e-6

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A custom path that cannot be read or parsed is an error, other locations are skipped.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks the invariants the game relies on.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.TileCount < 1 {
		errs = append(errs, fmt.Errorf("grid.tile_count must be at least 1, got %d", c.Grid.TileCount))
	}
	if c.Grid.ScoreAreaHeight < 2 {
		errs = append(errs, errors.New("grid.score_area_height must be at least 2"))
	}
	if c.Grid.ControlAreaHeight < 0 {
		errs = append(errs, errors.New("grid.control_area_height must not be negative"))
	}
	if c.Speed.MinMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_ms must be positive, got %d", c.Speed.MinMs))
	}
	if c.Speed.BaseMs < c.Speed.MinMs {
		errs = append(errs, fmt.Errorf("speed.base_ms (%d) is below speed.min_ms (%d)", c.Speed.BaseMs, c.Speed.MinMs))
	}
	if c.Speed.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("speed.points_per_level must be positive, got %d", c.Speed.PointsPerLevel))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Controls.ButtonSize <= 0 {
		errs = append(errs, errors.New("controls.button_size must be positive"))
	}
	if c.Particles.Shrink <= 0 || c.Particles.Shrink > 1 {
		errs = append(errs, fmt.Errorf("particles.shrink must be in (0, 1], got %v", c.Particles.Shrink))
	}
	if c.Particles.DecayMin <= 0 {
		errs = append(errs, errors.New("particles.decay_min must be positive"))
	}

	if len(c.Foods) == 0 {
		errs = append(errs, errors.New("foods: catalog is empty"))
	}
	total := 0.0
	for i, f := range c.Foods {
		if f.Points <= 0 {
			errs = append(errs, fmt.Errorf("foods[%d] (%s): points must be positive, got %d", i, f.Name, f.Points))
		}
		if f.Probability < 0 {
			errs = append(errs, fmt.Errorf("foods[%d] (%s): probability must not be negative", i, f.Name))
		}
		total += f.Probability
	}
	if len(c.Foods) > 0 && math.Abs(total-1.0) > probabilityTolerance {
		errs = append(errs, fmt.Errorf("foods: probabilities sum to %v, expected 1.0", total))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
