// Package bench runs a game headlessly in incremental and full redraw
// modes with identical input and compares the work each mode does.
package bench

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/display"
	"github.com/vovakirdan/oled-arcade/internal/engine"
	"github.com/vovakirdan/oled-arcade/internal/input"
	"github.com/vovakirdan/oled-arcade/internal/present"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/storage"
)

// Options configures one benchmark.
type Options struct {
	GameID string
	Seed   int64 // must be non-zero for reproducible runs
	Ticks  int
	Script []input.Step // nil generates a random script from Seed
	Config config.Config
	Logger *log.Logger
}

// Result compares the two modes.
type Result struct {
	GameID      string
	Seed        int64
	Ticks       int
	Incremental present.Stats
	Full        present.Stats
	Mismatches  int  // ticks whose committed frames differed
	Identical   bool // final frames are pixel-identical
}

// Savings returns the fraction of pixel writes the incremental mode avoided.
func (r Result) Savings() float64 {
	if r.Full.Pixels == 0 {
		return 0
	}
	return 1 - float64(r.Incremental.Pixels)/float64(r.Full.Pixels)
}

// lane is one game driven in one mode.
type lane struct {
	script *input.Script
	fb     *display.Framebuffer
	loop   *engine.Loop
}

func newLane(opts Options, mode engine.Mode, steps []input.Step) (*lane, error) {
	game, err := registry.Create(opts.GameID, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	script := input.NewScript(steps)
	fb := display.NewFramebuffer(nil)
	loop := engine.New(game, input.NewSampler(script, opts.Config.Input.Debounce), fb, engine.Options{
		Mode:   mode,
		Seed:   opts.Seed,
		Logger: opts.Logger,
	})
	return &lane{script: script, fb: fb, loop: loop}, nil
}

func (l *lane) tick(start time.Time, elapsed time.Duration) error {
	l.script.Advance(elapsed)
	return l.loop.Tick(start.Add(elapsed))
}

// Run plays both modes in lockstep on a virtual clock.
func Run(opts Options) (Result, error) {
	if opts.Ticks <= 0 {
		return Result{}, fmt.Errorf("bench: ticks must be positive, got %d", opts.Ticks)
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	probe, err := registry.Create(opts.GameID, opts.Config)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %w", err)
	}
	interval := time.Second / time.Duration(max(probe.TickRate(), 1))

	steps := opts.Script
	if steps == nil {
		steps = RandomScript(opts.Seed, time.Duration(opts.Ticks)*interval)
	}
	inc, err := newLane(opts, engine.ModeIncremental, steps)
	if err != nil {
		return Result{}, err
	}
	full, err := newLane(opts, engine.ModeFull, steps)
	if err != nil {
		return Result{}, err
	}

	res := Result{GameID: opts.GameID, Seed: opts.Seed, Ticks: opts.Ticks}
	start := time.Unix(0, 0)
	for i := 0; i < opts.Ticks; i++ {
		elapsed := time.Duration(i) * interval
		if err := inc.tick(start, elapsed); err != nil {
			return res, fmt.Errorf("bench: incremental: %w", err)
		}
		if err := full.tick(start, elapsed); err != nil {
			return res, fmt.Errorf("bench: full: %w", err)
		}
		if !inc.fb.Front().Equal(full.fb.Front()) {
			res.Mismatches++
		}
	}

	res.Incremental = inc.loop.Stats()
	res.Full = full.loop.Stats()
	res.Identical = inc.fb.Front().Equal(full.fb.Front())
	return res, nil
}

// Record stores both modes of a result as separate runs.
func Record(store *storage.Store, r Result) error {
	for _, run := range []struct {
		mode  engine.Mode
		stats present.Stats
	}{
		{engine.ModeIncremental, r.Incremental},
		{engine.ModeFull, r.Full},
	} {
		_, err := store.SaveRun(storage.Run{
			GameID:     r.GameID,
			Mode:       run.mode.String(),
			Seed:       r.Seed,
			Ticks:      run.stats.Ticks,
			Regions:    run.stats.Regions,
			Primitives: run.stats.Primitives,
			Pixels:     run.stats.Pixels,
			Commits:    run.stats.Commits,
		})
		if err != nil {
			return fmt.Errorf("bench: record %s run: %w", run.mode, err)
		}
	}
	return nil
}
