package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show recorded bench runs",
	Long: `Without arguments, prints per-game and per-mode averages of every
recorded bench run. With a game ID, lists that game's most recent runs.

Examples:
  arcade stats
  arcade stats snake --limit 20
  arcade stats snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of runs to list")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the game's recorded runs")
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening bench database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagStatsClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game ID")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagStatsClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return
	}

	runs, err := store.RecentRuns(gameID, flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'arcade bench %s' to record one.\n", gameID)
		return
	}

	fmt.Printf("  %-11s  %-6s  %-6s  %-9s  %-8s  %s\n", "Mode", "Seed", "Ticks", "Pixels", "Calls", "Date")
	fmt.Printf("  %-11s  %-6s  %-6s  %-9s  %-8s  %s\n", "----", "----", "-----", "------", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-11s  %-6d  %-6d  %-9d  %-8d  %s\n",
			r.Mode, r.Seed, r.Ticks, r.Pixels, r.Primitives, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	summary, err := store.Summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving summary: %v\n", err)
		os.Exit(1)
	}

	if len(summary) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arcade bench' to record some.")
		return
	}

	fmt.Printf("  %-12s  %-11s  %-4s  %-10s  %-10s  %-10s  %s\n",
		"Game", "Mode", "Runs", "Px/tick", "Rgn/tick", "Calls/tick", "Last run")
	fmt.Printf("  %-12s  %-11s  %-4s  %-10s  %-10s  %-10s  %s\n",
		"----", "----", "----", "-------", "--------", "----------", "--------")
	for _, s := range summary {
		fmt.Printf("  %-12s  %-11s  %-4d  %-10.1f  %-10.2f  %-10.2f  %s\n",
			s.GameID, s.Mode, s.Runs, s.AvgPixels, s.AvgRegions, s.AvgPrimitive,
			s.LastRun.Format("2006-01-02 15:04"))
	}
}
