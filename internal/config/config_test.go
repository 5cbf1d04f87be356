package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultSnakeConfig()

	if cfg.Speed != def.Speed {
		t.Errorf("speed mismatch: %+v vs %+v", cfg.Speed, def.Speed)
	}
	if cfg.Grid != def.Grid {
		t.Errorf("grid mismatch: %+v vs %+v", cfg.Grid, def.Grid)
	}
	if cfg.Particles != def.Particles {
		t.Errorf("particles mismatch: %+v vs %+v", cfg.Particles, def.Particles)
	}
	if len(cfg.Foods) != len(def.Foods) {
		t.Fatalf("food catalog size %d vs %d", len(cfg.Foods), len(def.Foods))
	}
	for i := range cfg.Foods {
		if cfg.Foods[i] != def.Foods[i] {
			t.Errorf("foods[%d] mismatch: %+v vs %+v", i, cfg.Foods[i], def.Foods[i])
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("speed:\n  base_ms: 300\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Speed.BaseMs != 300 {
		t.Errorf("BaseMs = %d, expected 300", cfg.Speed.BaseMs)
	}
	if cfg.Speed.MinMs != 80 {
		t.Errorf("MinMs should keep its default, got %d", cfg.Speed.MinMs)
	}
	if len(cfg.Foods) != 3 {
		t.Errorf("food catalog should keep its default, got %d entries", len(cfg.Foods))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{
			name:    "probabilities do not sum to one",
			mutate:  func(c *SnakeConfig) { c.Foods[0].Probability = 0.5 },
			wantErr: "probabilities sum",
		},
		{
			name:    "empty catalog",
			mutate:  func(c *SnakeConfig) { c.Foods = nil },
			wantErr: "catalog is empty",
		},
		{
			name:    "zero points",
			mutate:  func(c *SnakeConfig) { c.Foods[1].Points = 0 },
			wantErr: "points must be positive",
		},
		{
			name:    "min above base",
			mutate:  func(c *SnakeConfig) { c.Speed.MinMs = 500 },
			wantErr: "below speed.min_ms",
		},
		{
			name:    "no snake",
			mutate:  func(c *SnakeConfig) { c.Snake.InitialLength = 0 },
			wantErr: "initial_length",
		},
		{
			name:    "no tiles",
			mutate:  func(c *SnakeConfig) { c.Grid.TileCount = 0 },
			wantErr: "tile_count",
		},
		{
			name:    "rounding within tolerance",
			mutate:  func(c *SnakeConfig) { c.Foods[2].Probability = 0.1000000001 },
			wantErr: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  initial_length: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Snake.InitialLength != 5 {
		t.Errorf("InitialLength = %d, expected 5", cfg.Snake.InitialLength)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("foods:\n  - name: only\n    points: 1\n    probability: 0.4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected validation error for catalog summing to 0.4")
	}
}

func TestMarshalRoundTripKeepsCatalog(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Foods[2].Name != "rare" || cfg.Foods[2].Points != 3 {
		t.Errorf("unexpected catalog after round trip: %+v", cfg.Foods)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset should be normal, got %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplySnakePreset(t *testing.T) {
	easy := DefaultSnakeConfig()
	ApplySnakePreset(&easy, DifficultyEasy)
	if easy.Speed.BaseMs != 250 || easy.Speed.MinMs != 100 {
		t.Errorf("easy speed = %+v", easy.Speed)
	}

	hard := DefaultSnakeConfig()
	ApplySnakePreset(&hard, DifficultyHard)
	if hard.Speed.BaseMs != 150 || hard.Speed.MinMs != 60 {
		t.Errorf("hard speed = %+v", hard.Speed)
	}

	fixed := DefaultSnakeConfig()
	ApplySnakePreset(&fixed, DifficultyFixed)
	p := NewSpeedPolicy(fixed.Speed, 3)
	if got := p.Interval(40, 9); got != 200*time.Millisecond {
		t.Errorf("fixed preset should not speed up, got %v", got)
	}
}

func TestSpeedPolicy(t *testing.T) {
	p := NewSpeedPolicy(DefaultSnakeConfig().Speed, 3)

	tests := []struct {
		name          string
		length, level int
		expected      time.Duration
	}{
		{"initial", 3, 1, 200 * time.Millisecond},
		{"grown by 5", 8, 1, 185 * time.Millisecond},
		{"level 3", 3, 3, 180 * time.Millisecond},
		{"growth capped at 100", 100, 1, 100 * time.Millisecond},
		{"floored at min", 100, 5, 80 * time.Millisecond},
		{"shorter than initial", 1, 1, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Interval(tc.length, tc.level); got != tc.expected {
				t.Errorf("Interval(%d, %d) = %v, expected %v", tc.length, tc.level, got, tc.expected)
			}
		})
	}
}

func TestSpeedPolicyLevel(t *testing.T) {
	p := NewSpeedPolicy(DefaultSnakeConfig().Speed, 3)
	for score, want := range map[int]int{0: 1, 49: 1, 50: 2, 99: 2, 150: 4} {
		if got := p.Level(score); got != want {
			t.Errorf("Level(%d) = %d, expected %d", score, got, want)
		}
	}
}
