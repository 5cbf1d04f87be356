package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	opts     Options
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model. With a preset in opts the
// menu is skipped and the game starts right away.
func NewSessionModel(opts Options) SessionModel {
	m := SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if opts.Preset != "" {
		game := NewModel(opts, opts.Preset)
		m.game = &game
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished game stop here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if preset := m.menu.Selected(); preset != "" {
		game := NewModel(m.opts, preset)
		m.game = &game
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if m.opts.Audio != nil {
			m.opts.Audio.PauseBGM()
		}
		m.game = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}

	return m.menu.View()
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewSessionModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses act as touches
	)

	_, err := p.Run()
	return err
}
