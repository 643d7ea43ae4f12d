package bench

import (
	"fmt"
	"io"

	"github.com/vovakirdan/oled-arcade/internal/present"
)

// WriteReport prints a side by side comparison of the two modes.
func WriteReport(w io.Writer, r Result) {
	fmt.Fprintf(w, "Benchmark - %s (seed %d, %d ticks)\n\n", r.GameID, r.Seed, r.Ticks)
	fmt.Fprintf(w, "  %-12s  %10s  %10s  %12s  %8s\n", "Mode", "Regions", "Calls", "Pixels", "Px/tick")
	fmt.Fprintf(w, "  %-12s  %10s  %10s  %12s  %8s\n", "----", "-------", "-----", "------", "-------")
	row(w, "incremental", r.Incremental)
	row(w, "full", r.Full)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Pixel writes saved: %.1f%%\n", r.Savings()*100)
	if r.Identical && r.Mismatches == 0 {
		fmt.Fprintln(w, "Frames: identical on every tick")
	} else {
		fmt.Fprintf(w, "Frames: %d mismatched ticks, final frame identical: %v\n", r.Mismatches, r.Identical)
	}
}

func row(w io.Writer, name string, s present.Stats) {
	perTick := 0
	if s.Ticks > 0 {
		perTick = s.Pixels / s.Ticks
	}
	fmt.Fprintf(w, "  %-12s  %10d  %10d  %12d  %8d\n", name, s.Regions, s.Primitives, s.Pixels, perTick)
}
