package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/platform/tui"
	"github.com/vovakirdan/oled-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game on a simulated panel.

Controls:
  Arrows/hjkl  - D-pad
  Z/Space      - A
  X/Enter      - B
  Ctrl+S       - Save a screenshot
  Esc/Q        - Quit

Each game has its own reset button, shown by 'arcade list'.
Press and release it after the game ends to start over.

Examples:
  arcade play snake
  arcade play minesweeper --seed 42
  arcade play pong --mode full`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if code := playInTerminal(args[0]); code != 0 {
		os.Exit(code)
	}
}

// playInTerminal runs the simulator and returns the process exit code.
func playInTerminal(gameID string) int {
	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		return 1
	}

	cfg := loadConfig()
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return 1
	}

	opts, err := engineOptions(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("game ended with error", "game", gameID, "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}
	return 0
}
