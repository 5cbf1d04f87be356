package core

// Action is a semantic input, decoupled from the key or pointer that caused it.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow, k
	ActionDown              // S, Down arrow, j
	ActionLeft              // A, Left arrow, h
	ActionRight             // D, Right arrow, l
	ActionPause             // P, Space
	ActionRestart           // R, Enter after game over
	ActionScoreboard        // Tab
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Touch is a single pointer press in screen cell coordinates.
type Touch struct {
	X, Y int
}

// Point returns the touch position at the center of the pressed cell.
func (t Touch) Point() (float64, float64) {
	return float64(t.X) + 0.5, float64(t.Y) + 0.5
}

// InputFrame collects everything the player did between two host frames.
type InputFrame struct {
	Actions map[Action]bool
	Touches []Touch
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddTouch queues a pointer press.
func (f *InputFrame) AddTouch(x, y int) {
	f.Touches = append(f.Touches, Touch{X: x, Y: y})
}

// Empty reports whether nothing was pressed this frame.
func (f InputFrame) Empty() bool {
	return len(f.Touches) == 0 && len(f.Actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Touches = f.Touches[:0]
}
