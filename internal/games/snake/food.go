package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ErrBoardFull is returned when every cell is taken by the snake.
var ErrBoardFull = errors.New("snake: board full, no cell left for food")

// maxRejections bounds the random redraws before falling back to a scan of
// the free cells.
const maxRejections = 64

// CatalogFromConfig converts the configured food list into food types.
func CatalogFromConfig(foods []config.FoodConfig) []FoodType {
	catalog := make([]FoodType, len(foods))
	for i, f := range foods {
		catalog[i] = FoodType{
			Name:        f.Name,
			Color:       f.Color,
			Points:      f.Points,
			Probability: f.Probability,
		}
	}
	return catalog
}

// SelectFoodType picks a catalog entry by weighted random: the first entry
// whose cumulative probability reaches the draw. Float rounding that leaves
// the draw above the final sum falls back to the first entry.
func SelectFoodType(rng *rand.Rand, catalog []FoodType) FoodType {
	return pickFoodType(rng.Float64(), catalog)
}

func pickFoodType(draw float64, catalog []FoodType) FoodType {
	cum := 0.0
	for _, ft := range catalog {
		cum += ft.Probability
		if draw <= cum {
			return ft
		}
	}
	return catalog[0]
}

// GenerateFood places a new food of a weighted-random type on a free cell of
// a w x h board. Coordinates are drawn uniformly and redrawn while they hit
// an occupied cell; after maxRejections misses a free cell is picked from a
// full scan instead, so a nearly full board cannot spin forever.
func GenerateFood(rng *rand.Rand, catalog []FoodType, occupied []Point, w, h int) (Food, error) {
	if w <= 0 || h <= 0 || len(occupied) >= w*h {
		return Food{}, ErrBoardFull
	}

	ft := SelectFoodType(rng, catalog)

	for range maxRejections {
		p := Point{X: rng.Intn(w), Y: rng.Intn(h)}
		if !contains(occupied, p) {
			return Food{Point: p, Type: ft}, nil
		}
	}

	taken := make(map[Point]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}
	free := make([]Point, 0, w*h-len(taken))
	for y := range h {
		for x := range w {
			p := Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Food{}, ErrBoardFull
	}
	return Food{Point: free[rng.Intn(len(free))], Type: ft}, nil
}

func contains(cells []Point, p Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
