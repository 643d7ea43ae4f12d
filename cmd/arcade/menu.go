package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oled-arcade/internal/platform/tui"
	"github.com/vovakirdan/oled-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a game returns to the menu. Tab opens the bench stats.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Bench stats
  Q            - Quit

Examples:
  arcade menu
  arcade menu --mode full
  arcade menu --db ./bench.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runMenuSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMenuSession() error {
	cfg := loadConfig()
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	// Stats screen is optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open bench database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	opts, err := engineOptions(logger)
	if err != nil {
		return err
	}
	return tui.RunSession(store, cfg, opts, width, height)
}
