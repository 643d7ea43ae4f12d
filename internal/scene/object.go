// Package scene describes what should be visible on the panel.
// Games build a Frame of Objects every tick; the damage tracker compares
// consecutive frames and the presenter paints only what changed.
package scene

import "github.com/vovakirdan/oled-arcade/internal/core"

// Object is one drawable element with a stable ID.
// Bounds cover every pixel the object paints. Objects are plain values,
// so two objects with equal fields look identical on screen.
type Object struct {
	ID     string
	Bounds core.Rect

	Filled    bool       // fill Bounds with FillColor first
	FillColor core.Color // color used when Filled

	Outlined     bool       // draw a one-pixel border around Bounds
	OutlineColor core.Color // color used when Outlined

	Text   string     // optional text drawn last, transparent background
	TextAt core.Point // top-left of the first glyph cell
	Ink    core.Color // text color
}

// Box returns a filled rectangle.
func Box(id string, r core.Rect, c core.Color) Object {
	return Object{ID: id, Bounds: r, Filled: true, FillColor: c}
}

// Border returns an unfilled rectangle outline.
func Border(id string, r core.Rect, c core.Color) Object {
	return Object{ID: id, Bounds: r, Outlined: true, OutlineColor: c}
}

// Label returns text at (x, y) with a transparent background.
func Label(id string, x, y int, text string, ink core.Color) Object {
	o := Object{ID: id}
	return o.WithText(text, x, y, ink)
}

// WithText returns a copy of o that also draws text at (x, y).
// Bounds grow to cover the glyph cells.
func (o Object) WithText(text string, x, y int, ink core.Color) Object {
	o.Text = text
	o.TextAt = core.Point{X: x, Y: y}
	o.Ink = ink
	w, h := core.TextSize(text)
	o.Bounds = o.Bounds.Union(core.NewRect(x, y, w, h))
	return o
}

// Solid reports whether the object is a single-color filled rectangle.
// Solid objects can be moved by painting only the strips that changed.
func (o Object) Solid() bool {
	if !o.Filled {
		return false
	}
	if o.Outlined && o.OutlineColor != o.FillColor {
		return false
	}
	return o.Text == ""
}

// Visible reports whether drawing the object can change any pixel.
func (o Object) Visible() bool {
	return !o.Bounds.Empty() && (o.Filled || o.Outlined || o.Text != "")
}

// Draw paints the object into s: fill, then outline, then text.
func (o Object) Draw(s *core.Screen) {
	if o.Filled {
		s.FillRect(o.Bounds, o.FillColor)
	}
	if o.Outlined {
		s.DrawRect(o.Bounds, o.OutlineColor)
	}
	if o.Text != "" {
		s.DrawText(o.TextAt.X, o.TextAt.Y, o.Text, o.Ink)
	}
}
