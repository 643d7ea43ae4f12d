package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/platform/oled"
	"github.com/vovakirdan/oled-arcade/internal/registry"
)

var flagI2CBus string

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Play a game on the SSD1306 panel",
	Long: `Run the specified game on a 128x64 SSD1306 panel wired to I2C,
reading the six buttons from GPIO.

Button wiring (active low, internal pull-up):
  Up GPIO7, Left GPIO6, Down GPIO5, Right GPIO4, A GPIO15, B GPIO14

Set display.naive in the config (or --mode full) to redraw the whole
panel every tick.

Examples:
  arcade run snake
  arcade run pong --i2c /dev/i2c-1
  arcade run minesweeper --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagI2CBus, "i2c", "", "I2C bus name (overrides display.i2c_bus)")
}

func runRun(_ *cobra.Command, args []string) {
	if code := runPanel(args[0]); code != 0 {
		os.Exit(code)
	}
}

// runPanel plays gameID on the panel and returns the process exit code.
// Deferred cleanup runs before the caller exits.
func runPanel(gameID string) int {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		return 1
	}

	cfg := loadConfig()
	if flagI2CBus != "" {
		cfg.Display.I2CBus = flagI2CBus
	}

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := engineOptions(logger)
	if err != nil {
		logger.Error("invalid flags", "err", err)
		return 1
	}

	if err := oled.Run(ctx, gameID, cfg, opts); err != nil {
		logger.Error("panel run failed", "game", gameID, "err", err)
		return 1
	}
	logger.Info("stopped", "game", gameID)
	return 0
}
