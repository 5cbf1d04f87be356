package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options describes what a terminal session needs to build and run games.
type Options struct {
	Snake   config.SnakeConfig
	Preset  config.DifficultyPreset // Empty shows the difficulty menu
	Runtime core.RuntimeConfig
	Audio   snake.Audio
	Store   *storage.Store // Optional run ledger
	Logger  *log.Logger
	Player  string
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	game      *snake.Game
	loop      *snake.Loop
	screen    *core.Screen
	canvas    *Canvas
	store     *storage.Store
	logger    *log.Logger
	player    string
	preset    config.DifficultyPreset
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	input     core.InputFrame

	board          *ScoreboardModel // Non-nil while the scoreboard is open
	pausedForBoard bool

	runStart   time.Time
	recorded   bool // Whether the current finished run is in the ledger
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model. The preset is applied to a copy of the
// snake config.
func NewModel(opts Options, preset config.DifficultyPreset) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	snakeCfg := opts.Snake
	config.ApplySnakePreset(&snakeCfg, preset)

	game := snake.New(snakeCfg, snake.WithAudio(opts.Audio))
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:      game,
		loop:      snake.NewLoop(game),
		screen:    screen,
		canvas:    NewCanvas(screen, core.Color(snakeCfg.Palette.Background)),
		store:     opts.Store,
		logger:    opts.logger(),
		player:    opts.Player,
		preset:    preset,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
	}
}

// Init starts the first run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "player", m.player, "difficulty", m.preset)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.board == nil {
			m.keyMapper.MapMouseToFrame(msg, &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.handleBoardKey(msg)
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionScoreboard {
		m.openBoard()
		return m, nil
	}

	// B or Esc goes back to the menu once the run is paused or over
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		if st := m.game.State(); st.GameOver || st.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleBoardKey routes keys to the open scoreboard.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsClosed():
		m.closeBoard()
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// openBoard shows the ledger and pauses a running game.
func (m *Model) openBoard() {
	board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.board = &board
	if m.game.Phase() == snake.PhasePlaying {
		m.game.TogglePause()
		m.pausedForBoard = true
	}
}

// closeBoard hides the ledger and resumes the game it paused.
func (m *Model) closeBoard() {
	m.board = nil
	if m.pausedForBoard && m.game.Phase() == snake.PhasePaused {
		m.game.TogglePause()
	}
	m.pausedForBoard = false
}

// handleResize processes window resize events. The board is sized from the
// screen, so a resize always starts a new run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Keep the RNG stream going rather than replaying the opening seed
	cfg := m.config
	cfg.Seed = 0
	m.game.Reset(cfg)
	m.loop.Reset()
	m.runStart = time.Time{}
	m.recorded = false

	if m.board != nil {
		board := NewScoreboardModel(m.store, msg.Width, msg.Height)
		m.board = &board
		m.pausedForBoard = false
	}

	m.logger.Debug("screen resized, run restarted", "width", msg.Width, "height", msg.Height,
		"phase", m.game.Phase())
	return m, nil
}

// handleTick applies the frame's input and drives the game loop.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.input.Empty() {
		m.game.Apply(m.input)
		m.input.Clear()
	}

	m.loop.Frame(now)
	m.trackRun(now)

	return m, tickCmd(m.config.TickRate)
}

// trackRun records a finished run once and notices restarts.
func (m *Model) trackRun(now time.Time) {
	if m.runStart.IsZero() {
		m.runStart = now
	}

	over := m.game.State().GameOver
	switch {
	case over && !m.recorded:
		m.recorded = true
		m.recordRun(now.Sub(m.runStart))
	case !over && m.recorded:
		m.recorded = false
		m.runStart = now
		m.logger.Info("run started", "player", m.player, "difficulty", m.preset)
	}
}

// recordRun stores the finished run in the ledger.
func (m *Model) recordRun(d time.Duration) {
	st := m.game.Current()
	run := storage.RunRecord{
		Player:    m.player,
		Score:     st.Score,
		Combo:     st.Combo,
		Level:     st.Level,
		Length:    len(st.Snake),
		Duration:  d,
		BoardFull: st.BoardFull,
	}

	m.logger.Info("run finished",
		"player", run.Player,
		"score", run.Score,
		"level", run.Level,
		"length", run.Length,
		"duration", d.Round(time.Second),
		"board_full", run.BoardFull,
		"record", st.Score > st.StartHighScore,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.board != nil {
		return m.board.View()
	}

	m.screen.Clear()
	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// Game returns the underlying game.
func (m Model) Game() *snake.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
