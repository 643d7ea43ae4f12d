package bench

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/input"
	"github.com/vovakirdan/oled-arcade/internal/storage"

	_ "github.com/vovakirdan/oled-arcade/internal/games/buttontest"
	_ "github.com/vovakirdan/oled-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/oled-arcade/internal/games/pong"
	_ "github.com/vovakirdan/oled-arcade/internal/games/snake"
)

func TestModesAgree(t *testing.T) {
	for _, id := range []string{"buttontest", "minesweeper", "pong", "snake"} {
		t.Run(id, func(t *testing.T) {
			res, err := Run(Options{GameID: id, Seed: 42, Ticks: 300, Config: config.Default()})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if !res.Identical || res.Mismatches != 0 {
				t.Errorf("modes diverged: identical=%v mismatches=%d", res.Identical, res.Mismatches)
			}
			if res.Incremental.Commits != 300 || res.Full.Commits != 300 {
				t.Errorf("commits = %d/%d, expected 300 each", res.Incremental.Commits, res.Full.Commits)
			}
			if res.Incremental.Pixels >= res.Full.Pixels {
				t.Errorf("incremental touched %d pixels, full %d", res.Incremental.Pixels, res.Full.Pixels)
			}
		})
	}
}

func TestScriptedInput(t *testing.T) {
	// Steering left from the start runs into the left wall, so both
	// modes also pass through game over.
	script := []input.Step{{At: 0, Button: core.ButtonLeft, Pressed: true}}
	res, err := Run(Options{GameID: "snake", Seed: 3, Ticks: 400, Script: script, Config: config.Default()})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Identical {
		t.Error("final frames differ")
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(Options{GameID: "snake", Ticks: 0, Config: config.Default()}); err == nil {
		t.Error("expected error for zero ticks")
	}
	if _, err := Run(Options{GameID: "tetris", Ticks: 10, Config: config.Default()}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRandomScript(t *testing.T) {
	a := RandomScript(9, 5*time.Second)
	b := RandomScript(9, 5*time.Second)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("scripts have %d and %d steps", len(a), len(b))
	}

	var down [core.ButtonCount]bool
	for i, st := range a {
		if st != b[i] {
			t.Fatalf("step %d differs between equal seeds", i)
		}
		if i > 0 && st.At < a[i-1].At {
			t.Fatalf("step %d out of order", i)
		}
		if down[st.Button] == st.Pressed {
			t.Fatalf("step %d repeats level %v for %v", i, st.Pressed, st.Button)
		}
		down[st.Button] = st.Pressed
	}
}

func TestRecordAndReport(t *testing.T) {
	res, err := Run(Options{GameID: "pong", Seed: 1, Ticks: 50, Config: config.Default()})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "bench.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := Record(store, res); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	runs, err := store.RecentRuns("pong", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Mode != "full" || runs[1].Mode != "incremental" {
		t.Errorf("modes = %s, %s", runs[0].Mode, runs[1].Mode)
	}

	var buf bytes.Buffer
	WriteReport(&buf, res)
	out := buf.String()
	for _, want := range []string{"Benchmark - pong", "incremental", "full", "Pixel writes saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
