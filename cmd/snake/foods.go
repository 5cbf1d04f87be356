package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Show the food catalog",
	Long: `Shows every food type with its points and spawn chance.
Points are multiplied by the current combo when eaten.`,
	Args: cobra.NoArgs,
	RunE: runFoods,
}

func runFoods(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	catalog := snake.CatalogFromConfig(cfg.Foods)

	// Calculate column widths
	maxNameLen := 4 // "Food" header
	for _, ft := range catalog {
		maxNameLen = max(maxNameLen, len(ft.Name))
	}

	fmt.Println("Food catalog:")
	fmt.Println()

	// Print header
	fmt.Printf("     %-*s  %6s  %6s\n", maxNameLen, "Food", "Points", "Chance")
	fmt.Printf("     %-*s  %6s  %6s\n", maxNameLen, "----", "------", "------")

	for _, ft := range catalog {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(ft.Color)).Render("●")
		fmt.Printf("  %s  %-*s  %6d  %5.0f%%\n", swatch, maxNameLen, ft.Name, ft.Points, ft.Probability*100)
	}

	fmt.Println()
	fmt.Println("Run 'snake play' to start eating.")
	return nil
}
