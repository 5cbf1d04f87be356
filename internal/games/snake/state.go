package snake

// Direction is the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// FoodType is one rarity tier of the food catalog.
type FoodType struct {
	Name        string
	Color       string
	Points      int
	Probability float64
}

// Food is the single piece of food on the board.
type Food struct {
	Point
	Type FoodType
}

// State is the mutable snapshot of a running game.
type State struct {
	Snake     []Point // Head at index 0
	Food      *Food   // nil when the board has no free cell left
	Direction Direction

	Score     int
	HighScore int // Best score this session, kept across restarts
	Combo     int // Consecutive eats since the run started
	Level     int

	IsGameOver bool
	IsPaused   bool
	BoardFull  bool // Run ended because no free cell was left for food

	// HighScore when the run started, to tell whether the record was beaten.
	StartHighScore int
	Ticks          uint64
}

// Head returns the head cell. The snake is never empty while a run is live.
func (s *State) Head() Point {
	return s.Snake[0]
}

// Occupies reports whether any snake segment sits on p.
func (s *State) Occupies(p Point) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// NewRecord reports whether this run has beaten the session best it started with.
func (s *State) NewRecord() bool {
	return s.Score > s.StartHighScore
}
