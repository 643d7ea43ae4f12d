// Package input turns raw button lines into debounced per-tick edges.
package input

import (
	"time"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// DefaultDebounce is how long a raw level must stay unchanged before
// the sampler accepts it.
const DefaultDebounce = 30 * time.Millisecond

// Lines reads the raw level of a button line. Lines are active-low:
// Level returns false while the button is pressed.
type Lines interface {
	Level(b core.ButtonID) bool
}

// maxPending bounds the accepted transitions a line queues between
// samples: two full taps.
const maxPending = 4

type lineState struct {
	raw    bool      // last raw reading, true = pressed
	since  time.Time // when raw last changed
	stable bool      // debounced reading, true = pressed

	// Accepted levels not yet reported by Sample, oldest first.
	pending [maxPending]bool
	n       int
}

// accept records a debounced transition to level.
// When the queue is full, the newest queued transition is its opposite,
// so the two cancel and the queue still ends on the stable level.
func (st *lineState) accept(level bool) {
	st.stable = level
	if st.n == maxPending {
		st.n--
		return
	}
	st.pending[st.n] = level
	st.n++
}

// next returns the level to report this tick, one queued transition at a time.
func (st *lineState) next() bool {
	if st.n == 0 {
		return st.stable
	}
	level := st.pending[0]
	copy(st.pending[:], st.pending[1:st.n])
	st.n--
	return level
}

// Sampler polls Lines once per tick and produces an InputFrame.
// A transition is accepted only after the raw level has been stable for
// the debounce interval, so a bouncing contact yields one edge.
// Transitions accepted by Poll are queued and reported one per Sample,
// so a tap shorter than a tick still yields a press and a release.
type Sampler struct {
	lines    Lines
	debounce time.Duration
	state    [core.ButtonCount]lineState
	last     core.InputFrame
}

// NewSampler creates a sampler over lines. A negative debounce is treated as zero.
func NewSampler(lines Lines, debounce time.Duration) *Sampler {
	if debounce < 0 {
		debounce = 0
	}
	return &Sampler{lines: lines, debounce: debounce}
}

// Poll reads the lines without producing a frame. Calling it between
// ticks lets the filter see bounces shorter than a tick.
func (s *Sampler) Poll(now time.Time) {
	for i := range s.state {
		st := &s.state[i]
		down := !s.lines.Level(core.ButtonID(i))
		if down != st.raw {
			st.raw = down
			st.since = now
		}
		if st.raw != st.stable && now.Sub(st.since) >= s.debounce {
			st.accept(st.raw)
		}
	}
}

// Sample polls the lines and returns the edges since the previous Sample.
// A press and release both accepted since then are reported as Pressed
// now and Released on the next call. It never blocks.
func (s *Sampler) Sample(now time.Time) core.InputFrame {
	s.Poll(now)

	var down [core.ButtonCount]bool
	for i := range s.state {
		down[i] = s.state[i].next()
	}
	s.last = core.Levels(s.last, down)
	return s.last
}

// Reset forgets all history. Buttons held at the time of the next
// sample will report a fresh press.
func (s *Sampler) Reset() {
	s.state = [core.ButtonCount]lineState{}
	s.last = core.InputFrame{}
}
