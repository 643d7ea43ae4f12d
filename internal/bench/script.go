package bench

import (
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/input"
)

// Press lengths in a generated script.
const (
	minPress = 40 * time.Millisecond
	maxPress = 400 * time.Millisecond
	maxGap   = 300 * time.Millisecond
)

// RandomScript generates button presses covering length. Presses on
// one button never overlap; different buttons may be held together.
func RandomScript(seed int64, length time.Duration) []input.Step {
	rng := rand.New(rand.NewSource(seed))
	var steps []input.Step
	var free [core.ButtonCount]time.Duration

	for at := time.Duration(0); at < length; {
		b := core.ButtonID(rng.Intn(core.ButtonCount))
		start := max(at, free[b])
		hold := minPress + time.Duration(rng.Int63n(int64(maxPress-minPress)))
		steps = append(steps,
			input.Step{At: start, Button: b, Pressed: true},
			input.Step{At: start + hold, Button: b, Pressed: false},
		)
		free[b] = start + hold + minPress
		at += time.Duration(rng.Int63n(int64(maxGap)))
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].At < steps[j].At
	})
	return steps
}
