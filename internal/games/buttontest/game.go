// Package buttontest shows which buttons are held and how often each
// one has been pressed. It never ends.
package buttontest

import (
	"strconv"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

const (
	rowHeight = 10
	countX    = 48
	headerX   = 80
)

// Game implements the button test.
type Game struct {
	rate    int
	down    [core.ButtonCount]bool
	presses [core.ButtonCount]int
	total   int
}

// New creates a button test.
func New(cfg config.ButtonTestConfig) *Game {
	return &Game{rate: cfg.TickRate}
}

func init() {
	registry.Register("buttontest", func(cfg config.Config) registry.Game {
		return New(cfg.Games.ButtonTest)
	})
}

func (g *Game) ID() string    { return "buttontest" }
func (g *Game) Title() string { return "Button Test" }
func (g *Game) TickRate() int { return g.rate }

// ResetButton returns B. The test has no terminal state, so it is only
// consulted for symmetry with the games.
func (g *Game) ResetButton() core.ButtonID { return core.ButtonB }

// Reset clears the counters.
func (g *Game) Reset(core.RuntimeConfig) {
	*g = Game{rate: g.rate}
}

// Step records levels and counts press edges.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	for _, b := range core.Buttons {
		g.down[b] = in.IsDown(b)
		if in.Pressed(b) {
			g.presses[b]++
			g.total++
		}
	}
	return core.StepResult{State: g.State()}
}

// Presses returns how many times b has been pressed since the last reset.
func (g *Game) Presses(b core.ButtonID) int {
	return g.presses[b]
}

// State reports the total press count as the score.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.total}
}

// Render lists held buttons down the left edge in the order up, left,
// down, right, A, B with their press counters beside them.
func (g *Game) Render(dst *scene.Frame) {
	dst.Add(scene.Label("header:1", headerX, 0, " push", core.ColorOn))
	dst.Add(scene.Label("header:2", headerX, rowHeight, "button", core.ColorOn))

	for i, b := range core.Buttons {
		y := i * rowHeight
		if g.down[b] {
			dst.Add(scene.Label("held:"+b.String(), 0, y, b.String(), core.ColorOn))
		}
		if n := g.presses[b]; n > 0 {
			dst.Add(scene.Label("count:"+b.String(), countX, y, strconv.Itoa(n), core.ColorOn))
		}
	}
}
