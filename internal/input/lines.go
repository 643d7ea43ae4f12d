package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Manual lines are set directly by the caller.
type Manual struct {
	mu   sync.Mutex
	down [core.ButtonCount]bool
}

// Set marks a button as pressed or released.
func (m *Manual) Set(b core.ButtonID, pressed bool) {
	m.mu.Lock()
	m.down[b] = pressed
	m.mu.Unlock()
}

// Level implements Lines.
func (m *Manual) Level(b core.ButtonID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.down[b]
}

// Keyboard emulates buttons from key presses. Terminals report presses
// (and auto-repeat) but never releases, so a press counts as held for
// the hold window after the last key event.
type Keyboard struct {
	mu    sync.Mutex
	hold  time.Duration
	last  [core.ButtonCount]time.Time
	clock func() time.Time
}

// NewKeyboard creates keyboard lines. clock may be nil to use time.Now.
func NewKeyboard(hold time.Duration, clock func() time.Time) *Keyboard {
	if clock == nil {
		clock = time.Now
	}
	return &Keyboard{hold: hold, clock: clock}
}

// Tap records a key event for b at the current clock time.
func (k *Keyboard) Tap(b core.ButtonID) {
	k.mu.Lock()
	k.last[b] = k.clock()
	k.mu.Unlock()
}

// ReleaseAll ends every hold immediately.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	k.last = [core.ButtonCount]time.Time{}
	k.mu.Unlock()
}

// Level implements Lines.
func (k *Keyboard) Level(b core.ButtonID) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	t := k.last[b]
	if t.IsZero() {
		return true
	}
	return k.clock().Sub(t) >= k.hold
}

// Step is one scripted change of a button line.
type Step struct {
	At      time.Duration // offset from the start of the script
	Button  core.ButtonID
	Pressed bool
}

// Script replays a timeline of button changes. Steps must be sorted by At.
type Script struct {
	steps []Step
	next  int
	down  [core.ButtonCount]bool
}

// NewScript creates a script from steps sorted by time.
func NewScript(steps []Step) *Script {
	return &Script{steps: steps}
}

// Advance applies every step due at or before elapsed.
func (s *Script) Advance(elapsed time.Duration) {
	for s.next < len(s.steps) && s.steps[s.next].At <= elapsed {
		st := s.steps[s.next]
		s.down[st.Button] = st.Pressed
		s.next++
	}
}

// Done reports whether every step has been applied.
func (s *Script) Done() bool {
	return s.next >= len(s.steps)
}

// Level implements Lines.
func (s *Script) Level(b core.ButtonID) bool {
	return !s.down[b]
}
