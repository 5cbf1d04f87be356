package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  config.DifficultyPreset // Set when user picks a preset
}

// NewMenuModel creates a new menu model with the cursor on normal.
func NewMenuModel(width, height int) MenuModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}

	return MenuModel{
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.presets[m.cursor]
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, p, dimStyle.Render(p.Description()))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset, or empty if none was chosen yet.
func (m MenuModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w >= width {
			continue
		}
		lines[i] = strings.Repeat(" ", (width-w)/2) + line
	}
	return strings.Join(lines, "\n")
}
