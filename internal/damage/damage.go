// Package damage computes which parts of the panel must be repainted
// when one scene.Frame replaces another.
//
// Applying the regions returned by Diff, in order, to a screen that shows
// prev produces exactly the pixels of a full redraw of next.
package damage

import (
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Op is the kind of work a region asks for.
type Op uint8

const (
	OpErase Op = iota // fill Rect with the background
	OpDraw            // paint Object, restricted to Rect for solid objects
)

// String returns "erase" or "draw".
func (o Op) String() string {
	if o == OpErase {
		return "erase"
	}
	return "draw"
}

// Region is one unit of repaint work.
type Region struct {
	Op     Op
	Rect   core.Rect
	Object scene.Object // set for OpDraw
}

// Partial reports whether a draw covers only part of its object.
// Only solid objects are drawn partially.
func (r Region) Partial() bool {
	return r.Op == OpDraw && r.Rect != r.Object.Bounds
}

// Screen is the rectangle of the whole panel.
var Screen = core.NewRect(0, 0, core.ScreenW, core.ScreenH)

type plan uint8

const (
	planKeep    plan = iota // unchanged, redraw only if something touched it
	planFull                // draw the whole object
	planPartial             // solid move: draw the newly covered strips
)

// Diff returns the ordered regions that turn prev into next.
// All erase regions come first; draws follow next's z-order.
// A nil prev is treated as an empty frame over a dark screen.
func Diff(prev, next *scene.Frame) []Region {
	var regions []Region
	var affected []core.Rect

	erase := func(r core.Rect) {
		if r.Empty() {
			return
		}
		regions = append(regions, Region{Op: OpErase, Rect: r})
		affected = append(affected, r)
	}

	for _, o := range prev.Objects() {
		if _, _, ok := next.Lookup(o.ID); !ok && o.Visible() {
			erase(o.Bounds)
		}
	}

	objects := next.Objects()
	plans := make([]plan, len(objects))
	maxPrev := -1
	for i, o := range objects {
		old, pi, ok := prev.Lookup(o.ID)
		switch {
		case !ok:
			plans[i] = planFull
		case pi < maxPrev:
			// Moved below an object it used to be drawn over.
			if old.Visible() {
				erase(old.Bounds)
			}
			plans[i] = planFull
		case old == o:
			plans[i] = planKeep
		case old.Solid() && o.Solid() && old.FillColor == o.FillColor:
			for _, r := range old.Bounds.Subtract(o.Bounds) {
				erase(r)
			}
			plans[i] = planPartial
		default:
			if old.Visible() {
				erase(old.Bounds)
			}
			plans[i] = planFull
		}
		if ok && pi > maxPrev {
			maxPrev = pi
		}
	}

	for i, o := range objects {
		if !o.Visible() {
			continue
		}
		if plans[i] == planFull || touches(affected, o.Bounds) {
			regions = append(regions, Region{Op: OpDraw, Rect: o.Bounds, Object: o})
			affected = append(affected, o.Bounds)
			continue
		}
		if plans[i] == planPartial {
			old, _, _ := prev.Lookup(o.ID)
			for _, r := range o.Bounds.Subtract(old.Bounds) {
				regions = append(regions, Region{Op: OpDraw, Rect: r, Object: o})
				affected = append(affected, r)
			}
		}
	}
	return regions
}

// Full returns the regions of a clear-and-redraw of next.
func Full(next *scene.Frame) []Region {
	regions := make([]Region, 0, next.Len()+1)
	regions = append(regions, Region{Op: OpErase, Rect: Screen})
	for _, o := range next.Objects() {
		if o.Visible() {
			regions = append(regions, Region{Op: OpDraw, Rect: o.Bounds, Object: o})
		}
	}
	return regions
}

// Apply paints regions into s. It is the pixel-level model of what the
// presenter asks a display to do.
func Apply(s *core.Screen, regions []Region) {
	for _, r := range regions {
		switch {
		case r.Op == OpErase:
			s.FillRect(r.Rect, core.ColorOff)
		case r.Partial():
			s.FillRect(r.Rect, r.Object.FillColor)
		default:
			r.Object.Draw(s)
		}
	}
}

// Area returns the total number of pixels covered by the regions.
// Overlapping regions are counted once per region.
func Area(regions []Region) int {
	n := 0
	for _, r := range regions {
		n += r.Rect.Area()
	}
	return n
}

func touches(rects []core.Rect, r core.Rect) bool {
	for _, a := range rects {
		if a.Intersects(r) {
			return true
		}
	}
	return false
}
