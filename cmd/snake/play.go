package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a local game.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R/Enter           - Restart (after game over)
  Tab               - Session runs
  B/Esc             - Back to menu (while paused or after game over)
  Q/Ctrl+C          - Quit
  Mouse             - Click the on-screen buttons, click anywhere to restart

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Classic pacing
  hard   - Fast start, faster floor
  fixed  - Constant speed, no progression

Examples:
  snake play
  snake play --difficulty easy
  snake play --mute --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	snakeCfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size before the first resize message arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioCfg := snakeCfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	sound, closeAudio, err := audio.Open(audioCfg)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		sound, closeAudio = audio.Nop(), func() {}
	}
	defer closeAudio()

	// Open the run ledger
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := os.Getenv("USER")
	if player == "" {
		player = "local"
	}

	logger.Info("session started", "player", player, "width", width, "height", height,
		"difficulty", preset, "sound", audioCfg.Enabled)

	if err := tui.Run(tui.Options{
		Snake:   snakeCfg,
		Preset:  preset,
		Runtime: runtime,
		Audio:   sound,
		Store:   store,
		Logger:  logger,
		Player:  player,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if store != nil {
		if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
			fmt.Printf("Runs: %d  Best: %d  Best combo: x%d\n", stats.Runs, stats.BestScore, stats.BestCombo)
		}
	}
	return nil
}
