package snake

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func defaultCatalog() []FoodType {
	return CatalogFromConfig(config.DefaultSnakeConfig().Foods)
}

func TestPickFoodType(t *testing.T) {
	catalog := defaultCatalog()

	tests := []struct {
		draw float64
		want string
	}{
		{0, "normal"},
		{0.5, "normal"},
		{0.7, "normal"},
		{0.7000001, "golden"},
		{0.9, "golden"},
		{0.95, "rare"},
		{0.9999999, "rare"},
		{1.5, "normal"}, // above the sum falls back to the first entry
	}

	for _, tt := range tests {
		if got := pickFoodType(tt.draw, catalog); got.Name != tt.want {
			t.Errorf("pickFoodType(%v) = %s, want %s", tt.draw, got.Name, tt.want)
		}
	}
}

func TestSelectFoodTypeDistribution(t *testing.T) {
	catalog := defaultCatalog()
	rng := rand.New(rand.NewSource(99))

	const draws = 20000
	counts := map[string]int{}
	for range draws {
		counts[SelectFoodType(rng, catalog).Name]++
	}

	for _, ft := range catalog {
		got := float64(counts[ft.Name]) / draws
		if math.Abs(got-ft.Probability) > 0.02 {
			t.Errorf("%s: frequency %.3f, want about %.2f", ft.Name, got, ft.Probability)
		}
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	catalog := defaultCatalog()
	rng := rand.New(rand.NewSource(5))

	// Fill all but one cell of a 4x3 board.
	var occupied []Point
	for y := range 3 {
		for x := range 4 {
			if x == 2 && y == 1 {
				continue
			}
			occupied = append(occupied, Point{X: x, Y: y})
		}
	}

	for range 50 {
		f, err := GenerateFood(rng, catalog, occupied, 4, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Point != (Point{X: 2, Y: 1}) {
			t.Fatalf("food at %v, want the only free cell", f.Point)
		}
	}
}

func TestGenerateFoodInBounds(t *testing.T) {
	catalog := defaultCatalog()
	rng := rand.New(rand.NewSource(11))
	occupied := []Point{{0, 0}, {1, 0}, {2, 0}}

	for range 500 {
		f, err := GenerateFood(rng, catalog, occupied, 10, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.X < 0 || f.X >= 10 || f.Y < 0 || f.Y >= 6 {
			t.Fatalf("food out of bounds: %v", f.Point)
		}
		if contains(occupied, f.Point) {
			t.Fatalf("food on snake: %v", f.Point)
		}
	}
}

func TestGenerateFoodBoardFull(t *testing.T) {
	catalog := defaultCatalog()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		occupied []Point
		w, h     int
	}{
		{"every cell taken", []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, 2, 2},
		{"empty board", nil, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateFood(rng, catalog, tt.occupied, tt.w, tt.h)
			if !errors.Is(err, ErrBoardFull) {
				t.Errorf("expected ErrBoardFull, got %v", err)
			}
		})
	}
}
