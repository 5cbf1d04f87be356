package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower start, gentle speed-up"
	case DifficultyNormal:
		return "Classic pacing"
	case DifficultyHard:
		return "Fast start, faster floor"
	case DifficultyFixed:
		return "Constant speed, no progression"
	default:
		return ""
	}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplySnakePreset modifies the speed section for a preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMs = cfg.Speed.BaseMs * 5 / 4
		cfg.Speed.MinMs = cfg.Speed.MinMs * 5 / 4
	case DifficultyHard:
		cfg.Speed.BaseMs = cfg.Speed.BaseMs * 3 / 4
		cfg.Speed.MinMs = cfg.Speed.MinMs * 3 / 4
	case DifficultyFixed:
		cfg.Speed.GrowthStepMs = 0
		cfg.Speed.LevelStepMs = 0
	}
}

// SpeedPolicy turns snake length and level into a tick interval.
type SpeedPolicy struct {
	cfg           SpeedConfig
	initialLength int
}

// NewSpeedPolicy creates a policy for the given speed section and starting length.
func NewSpeedPolicy(cfg SpeedConfig, initialLength int) SpeedPolicy {
	return SpeedPolicy{cfg: cfg, initialLength: initialLength}
}

// Level returns floor(score/pointsPerLevel)+1.
func (p SpeedPolicy) Level(score int) int {
	if p.cfg.PointsPerLevel <= 0 {
		return 1
	}
	return score/p.cfg.PointsPerLevel + 1
}

// Interval returns the time between ticks:
// max(min, base - (min(grown*growthStep, growthCap) + (level-1)*levelStep)).
func (p SpeedPolicy) Interval(length, level int) time.Duration {
	grown := max(length-p.initialLength, 0)
	growthDecrease := min(grown*p.cfg.GrowthStepMs, p.cfg.GrowthCapMs)
	levelDecrease := max(level-1, 0) * p.cfg.LevelStepMs
	ms := max(p.cfg.MinMs, p.cfg.BaseMs-(growthDecrease+levelDecrease))
	return time.Duration(ms) * time.Millisecond
}
