// Package present turns damage regions into display primitive calls.
// It is the only code that draws on a display.Display.
package present

import (
	"fmt"

	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/damage"
	"github.com/vovakirdan/oled-arcade/internal/display"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Stats counts the work done by a presenter.
type Stats struct {
	Ticks      int // Present calls
	Regions    int // regions painted
	Primitives int // display calls, Show excluded
	Pixels     int // area covered by the regions
	Commits    int // successful Show calls
}

// Add returns the sum of two stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Ticks:      s.Ticks + o.Ticks,
		Regions:    s.Regions + o.Regions,
		Primitives: s.Primitives + o.Primitives,
		Pixels:     s.Pixels + o.Pixels,
		Commits:    s.Commits + o.Commits,
	}
}

// Presenter paints regions on a display and commits once per call.
type Presenter struct {
	dst   display.Display
	stats Stats
}

// New creates a presenter drawing on dst.
func New(dst display.Display) *Presenter {
	return &Presenter{dst: dst}
}

// Present paints regions in order and then calls Show exactly once.
// A commit failure is returned wrapped and is not retried.
func (p *Presenter) Present(regions []damage.Region) error {
	p.stats.Ticks++
	for _, r := range regions {
		switch {
		case r.Op == damage.OpErase:
			p.erase(r.Rect)
		case r.Partial():
			p.fillRect(r.Rect, r.Object.FillColor)
		default:
			p.draw(r.Object)
		}
		p.stats.Regions++
		p.stats.Pixels += r.Rect.Area()
	}

	if err := p.dst.Show(); err != nil {
		return fmt.Errorf("present: commit failed: %w", err)
	}
	p.stats.Commits++
	return nil
}

// Stats returns the counters accumulated so far.
func (p *Presenter) Stats() Stats {
	return p.stats
}

// ResetStats zeroes the counters.
func (p *Presenter) ResetStats() {
	p.stats = Stats{}
}

func (p *Presenter) erase(r core.Rect) {
	if r.Intersect(damage.Screen) == damage.Screen {
		p.dst.Fill(core.ColorOff)
		p.stats.Primitives++
		return
	}
	p.fillRect(r, core.ColorOff)
}

func (p *Presenter) fillRect(r core.Rect, c core.Color) {
	p.dst.FillRect(r.X, r.Y, r.W, r.H, c)
	p.stats.Primitives++
}

func (p *Presenter) draw(o scene.Object) {
	b := o.Bounds
	if o.Filled {
		p.fillRect(b, o.FillColor)
	}
	if o.Outlined {
		p.dst.Rect(b.X, b.Y, b.W, b.H, o.OutlineColor)
		p.stats.Primitives++
	}
	if o.Text != "" {
		p.dst.Text(o.Text, o.TextAt.X, o.TextAt.Y, o.Ink)
		p.stats.Primitives++
	}
}
