package core

// Color is a cell color in "#RRGGBB" form.
// The zero value leaves the terminal's own color in place.
type Color string

// ColorDefault keeps the terminal default color.
const ColorDefault Color = ""

// IsDefault reports whether c defers to the terminal color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
