package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its tick rate and reset button.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	cfg := loadConfig()

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %-6s  %s\n", maxIDLen, "ID", "Title", "Tick/s", "Reset")
	fmt.Printf("  %-*s  %-14s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, g := range games {
		game, err := registry.Create(g.ID, cfg)
		if err != nil {
			fmt.Printf("  %-*s  %-14s  (%v)\n", maxIDLen, g.ID, g.Title, err)
			continue
		}
		fmt.Printf("  %-*s  %-14s  %-6d  %v\n", maxIDLen, g.ID, g.Title, game.TickRate(), game.ResetButton())
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game in the terminal,")
	fmt.Println("or 'arcade run <id>' to play it on the panel.")
}
