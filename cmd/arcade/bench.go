package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/bench"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/storage"
)

var (
	flagBenchTicks int
	flagNoRecord   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [game...]",
	Short: "Compare incremental and full-redraw rendering",
	Long: `Play games headlessly with random scripted input, once with the
incremental renderer and once with full redraws, on a virtual clock.

Both runs must commit identical frames on every tick. The report shows
how many regions, draw calls and pixel writes each mode needed. Results
are stored in the bench database unless --no-record is given.

With no arguments every registered game is benchmarked.

Examples:
  arcade bench
  arcade bench snake --ticks 5000
  arcade bench pong --seed 7 --no-record`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 1000, "Ticks to play per game")
	benchCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not store results")
}

func runBench(_ *cobra.Command, args []string) {
	if code := benchGames(args); code != 0 {
		os.Exit(code)
	}
}

// benchGames benchmarks ids (all games when empty) and returns the
// process exit code: 1 if any game failed or the modes disagreed.
func benchGames(args []string) int {
	cfg := loadConfig()
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	ids := args
	if len(ids) == 0 {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	var store *storage.Store
	if !flagNoRecord {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("results will not be recorded", "path", flagDBPath, "err", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	failed := false
	for i, id := range ids {
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
			failed = true
			continue
		}

		res, err := bench.Run(bench.Options{
			GameID: id,
			Seed:   seed,
			Ticks:  flagBenchTicks,
			Config: cfg,
			Logger: logger.With("game", id),
		})
		if err != nil {
			logger.Error("bench failed", "game", id, "err", err)
			failed = true
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		bench.WriteReport(os.Stdout, res)

		if res.Mismatches > 0 || !res.Identical {
			failed = true
		}
		if store != nil {
			if err := bench.Record(store, res); err != nil {
				logger.Warn("could not record run", "game", id, "err", err)
			}
		}
	}

	if failed {
		return 1
	}
	return 0
}
