package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{GameID: "pong", Mode: "full", Seed: 1, Ticks: 100, Regions: 500, Primitives: 800, Pixels: 819200, Commits: 100},
		{GameID: "pong", Mode: "incremental", Seed: 1, Ticks: 100, Regions: 300, Primitives: 320, Pixels: 4000, Commits: 100},
		{GameID: "snake", Mode: "incremental", Seed: 2, Ticks: 50, Regions: 120, Primitives: 130, Pixels: 2100, Commits: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("pong", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 pong runs, got %d", len(got))
	}
	// Newest first
	if got[0].Mode != "incremental" || got[1].Mode != "full" {
		t.Errorf("Unexpected order: %s, %s", got[0].Mode, got[1].Mode)
	}
	if got[0].Pixels != 4000 || got[0].Seed != 1 || got[0].Commits != 100 {
		t.Errorf("Round trip mismatch: %+v", got[0])
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs in total, got %d", len(all))
	}

	limited, err := store.RecentRuns("", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 1 || limited[0].GameID != "snake" {
		t.Errorf("Expected only the newest run, got %+v", limited)
	}
}

func TestSummary(t *testing.T) {
	store := openTemp(t)

	for _, r := range []Run{
		{GameID: "pong", Mode: "incremental", Ticks: 10, Pixels: 100, Regions: 20, Primitives: 30},
		{GameID: "pong", Mode: "incremental", Ticks: 30, Pixels: 300, Regions: 20, Primitives: 50},
		{GameID: "pong", Mode: "full", Ticks: 10, Pixels: 81920, Regions: 50, Primitives: 60},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(stats))
	}

	// Ordered by game then mode: full before incremental.
	full, inc := stats[0], stats[1]
	if full.Mode != "full" || full.AvgPixels != 8192 {
		t.Errorf("full stats = %+v", full)
	}
	if inc.Runs != 2 || inc.AvgPixels != 10 || inc.AvgRegions != 1 || inc.AvgPrimitive != 2 {
		t.Errorf("incremental stats = %+v", inc)
	}
}

func TestSummaryZeroTicks(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveRun(Run{GameID: "snake", Mode: "full"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stats, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if len(stats) != 1 || stats[0].AvgPixels != 0 {
		t.Errorf("stats = %+v, expected zero averages", stats)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTemp(t)
	store.SaveRun(Run{GameID: "pong", Mode: "full", Ticks: 1})
	store.SaveRun(Run{GameID: "snake", Mode: "full", Ticks: 1})

	if err := store.ClearRuns("pong"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	pong, _ := store.RecentRuns("pong", 10)
	if len(pong) != 0 {
		t.Errorf("Expected no pong runs after clear, got %d", len(pong))
	}
	snake, _ := store.RecentRuns("snake", 10)
	if len(snake) != 1 {
		t.Errorf("Expected snake run to remain, got %d", len(snake))
	}
}
