// Package engine runs one game on one display: sample input, step the
// game, diff its frame against the previous one and present the damage.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oled-arcade/internal/audio"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/damage"
	"github.com/vovakirdan/oled-arcade/internal/display"
	"github.com/vovakirdan/oled-arcade/internal/input"
	"github.com/vovakirdan/oled-arcade/internal/present"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Mode selects how frames reach the display.
type Mode uint8

const (
	ModeIncremental Mode = iota // repaint damaged regions only
	ModeFull                    // clear and redraw every tick
)

func (m Mode) String() string {
	if m == ModeFull {
		return "full"
	}
	return "incremental"
}

// ParseMode accepts "incremental" or "full".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "incremental", "":
		return ModeIncremental, nil
	case "full":
		return ModeFull, nil
	}
	return 0, fmt.Errorf("engine: unknown mode %q", s)
}

// Options configures a Loop. The zero value is a silent incremental
// loop with time based seeds.
type Options struct {
	Mode Mode

	// Seed for the first reset. Later resets use Seed plus the reset
	// count. Zero picks a seed from the clock on every reset.
	Seed int64

	// PollInterval, when positive, makes Run read the button lines
	// between ticks so the debounce filter sees short bounces.
	PollInterval time.Duration

	Logger *log.Logger
	Player audio.Player
	Tones  audio.Tones
}

// Loop owns a game and drives it one tick at a time.
type Loop struct {
	game      registry.Game
	sampler   *input.Sampler
	presenter *present.Presenter
	opts      Options
	log       *log.Logger
	player    audio.Player

	phase  core.Phase
	prev   *scene.Frame
	next   *scene.Frame
	last   time.Time
	ticks  int
	resets int
}

// New creates a loop in the Initializing phase. The first Tick resets
// the game and draws it in full.
func New(game registry.Game, sampler *input.Sampler, dst display.Display, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = audio.Nop{}
	}
	return &Loop{
		game:      game,
		sampler:   sampler,
		presenter: present.New(dst),
		opts:      opts,
		log:       logger.With("game", game.ID()),
		player:    player,
		phase:     core.PhaseInitializing,
		prev:      scene.NewFrame(),
		next:      scene.NewFrame(),
	}
}

// Tick runs one iteration. A display commit failure is returned and
// leaves the loop where it was.
func (l *Loop) Tick(now time.Time) error {
	in := l.sampler.Sample(now)

	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.ticks++

	full := l.opts.Mode == ModeFull
	var events []core.Event

	switch l.phase {
	case core.PhaseInitializing:
		l.reset()
		full = true

	case core.PhasePlaying:
		res := l.game.Step(in, elapsed)
		events = res.Events
		if res.State.GameOver {
			l.setPhase(core.PhaseOver)
			l.log.Info("game over", "score", res.State.Score, "won", res.State.Won)
		}

	case core.PhaseOver:
		if in.Pressed(l.game.ResetButton()) {
			l.setPhase(core.PhaseAwaitingReset)
		}

	case core.PhaseAwaitingReset:
		if in.Released(l.game.ResetButton()) {
			l.setPhase(core.PhaseInitializing)
			l.reset()
			full = true
		}
	}

	l.next.Reset()
	l.game.Render(l.next)

	var regions []damage.Region
	if full {
		regions = damage.Full(l.next)
	} else {
		regions = damage.Diff(l.prev, l.next)
	}
	if err := l.presenter.Present(regions); err != nil {
		return fmt.Errorf("engine: tick %d: %w", l.ticks, err)
	}
	l.prev, l.next = l.next, l.prev

	l.play(events)
	return nil
}

// reset reseeds and restarts the game, then enters Playing.
func (l *Loop) reset() {
	seed := l.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(l.resets)
	}
	l.resets++

	l.game.Reset(core.RuntimeConfig{
		ScreenW:  core.ScreenW,
		ScreenH:  core.ScreenH,
		TickRate: l.game.TickRate(),
		Seed:     seed,
	})
	l.log.Debug("reset", "seed", seed)
	l.setPhase(core.PhasePlaying)
}

func (l *Loop) setPhase(p core.Phase) {
	l.log.Debug("phase", "from", l.phase, "to", p)
	l.phase = p
}

// play hands event tones to the player after the frame is committed.
func (l *Loop) play(events []core.Event) {
	for _, ev := range events {
		if t, ok := l.opts.Tones[ev]; ok {
			l.player.Play(t)
		}
	}
}

// Run ticks at the game's rate until ctx is cancelled or a tick fails.
// A slow tick delays the next one; missed ticks are not replayed.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.Interval())
	defer ticker.Stop()

	var poll <-chan time.Time
	if l.opts.PollInterval > 0 {
		pt := time.NewTicker(l.opts.PollInterval)
		defer pt.Stop()
		poll = pt.C
	}

	l.log.Info("loop started", "rate", l.game.TickRate(), "mode", l.opts.Mode)
	if err := l.Tick(time.Now()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop stopped", "ticks", l.ticks)
			return nil
		case now := <-poll:
			l.sampler.Poll(now)
		case now := <-ticker.C:
			if err := l.Tick(now); err != nil {
				l.log.Error("tick failed", "err", err)
				return err
			}
		}
	}
}

// Interval returns the nominal time between ticks.
func (l *Loop) Interval() time.Duration {
	rate := l.game.TickRate()
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// Phase returns the current phase.
func (l *Loop) Phase() core.Phase {
	return l.phase
}

// Game returns the game driven by the loop.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Stats returns the presenter counters.
func (l *Loop) Stats() present.Stats {
	return l.presenter.Stats()
}
