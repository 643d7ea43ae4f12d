// arcade runs the 128x64 handheld arcade: button test, minesweeper,
// pong and snake, drawn through an incremental renderer.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade run <game>        - Play on an SSD1306 panel with GPIO buttons
//	arcade bench <game>      - Compare incremental and full-redraw output
//	arcade stats             - Show recorded bench runs
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Arcade config YAML
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--mode <mode>      - Render mode: incremental or full
//	--db <path>        - Set database path (default: ~/.arcade/bench.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/engine"

	// Import games to register them
	_ "github.com/vovakirdan/oled-arcade/internal/games/buttontest"
	_ "github.com/vovakirdan/oled-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/oled-arcade/internal/games/pong"
	_ "github.com/vovakirdan/oled-arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagMode     string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "OLED Arcade - 1-bit handheld games",
	Long: `OLED Arcade plays small games on a 128x64 monochrome panel, or on a
simulated one in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  menu     - Interactive game picker menu
  run      - Play on the real panel
  bench    - Compare incremental and full-redraw rendering
  stats    - View recorded bench runs
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play snake
  arcade run pong --config ./arcade.yaml
  arcade bench minesweeper --ticks 2000 --seed 7
  arcade serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcade config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "incremental", "Render mode: incremental or full")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/bench.db", "Path to bench database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the arcade config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the process logger. fallback receives output when
// --log-file is not set; terminal UIs pass io.Discard so logs do not
// tear the alt screen.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w, closer = f, func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer
}

// engineOptions builds loop options from the global flags.
func engineOptions(logger *log.Logger) (engine.Options, error) {
	mode, err := engine.ParseMode(flagMode)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Mode:   mode,
		Seed:   flagSeed,
		Logger: logger,
	}, nil
}
