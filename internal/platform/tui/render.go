package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles for one render pass.
type styleCache map[cellStyle]lipgloss.Style

func (sc styleCache) get(key cellStyle) lipgloss.Style {
	if st, ok := sc[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !key.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(key.fg))
	}
	if !key.bg.IsDefault() {
		st = st.Background(lipgloss.Color(key.bg))
	}
	sc[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())
	styles := styleCache{}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			key := cellStyle{fg: start.FG, bg: start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key.fg.IsDefault() && key.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
