// snake is a terminal snake game with food rarity tiers, combos and levels.
//
// Usage:
//
//	snake                    - Play locally (same as snake play)
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake foods              - Show the food catalog
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set host frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible food and particles
//	--config <path>       - Load a custom snake.yaml
//	--difficulty <name>   - Skip the menu with a preset: easy, normal, hard, fixed
//	--mute                - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a casual snake game for your terminal",
	Long: `Snake is a terminal snake game. Eat food to grow, chain meals for
combos and climb levels as the snake speeds up. Mouse clicks on the
on-screen buttons work like touch controls.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  foods    - Show the food catalog
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (empty shows the menu)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play logs nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the snake config and validates the difficulty flag.
func loadConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	if flagDifficulty == "" {
		return cfg, "", nil
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	return cfg, preset, nil
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is given. The returned close func must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
