package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.
The difficulty preset, if given, is applied first.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplySnakePreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
