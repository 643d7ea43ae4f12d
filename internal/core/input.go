package core

// ButtonID identifies one of the six physical push-buttons.
// Each maps 1:1 to an input line for the process lifetime.
type ButtonID int

const (
	ButtonUp ButtonID = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB

	ButtonCount = 6
)

// Buttons lists every button in display order.
var Buttons = [ButtonCount]ButtonID{ButtonUp, ButtonLeft, ButtonDown, ButtonRight, ButtonA, ButtonB}

// String returns the label printed on the device for the button.
func (b ButtonID) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return "?"
	}
}

// ParseButton returns the button with the given label.
func ParseButton(s string) (ButtonID, bool) {
	for _, b := range Buttons {
		if b.String() == s {
			return b, true
		}
	}
	return 0, false
}

// Edge is the debounced state change of a button during one tick.
type Edge uint8

const (
	EdgeIdle     Edge = iota // up, and was up last tick
	EdgePressed              // went down this tick
	EdgeHeld                 // down, and was down last tick
	EdgeReleased             // went up this tick
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeIdle:
		return "Idle"
	case EdgePressed:
		return "Pressed"
	case EdgeHeld:
		return "Held"
	case EdgeReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Down reports whether the button is logically down for this edge.
func (e Edge) Down() bool {
	return e == EdgePressed || e == EdgeHeld
}

// InputFrame is the debounced state of every button for one tick.
// It exposes both a level view (IsDown) and an edge view (TookEdge).
type InputFrame struct {
	edges [ButtonCount]Edge
}

// Set records the edge for a button. Invalid ids are ignored.
func (f *InputFrame) Set(b ButtonID, e Edge) {
	if b < 0 || int(b) >= ButtonCount {
		return
	}
	f.edges[b] = e
}

// Edge returns the edge recorded for a button.
func (f InputFrame) Edge(b ButtonID) Edge {
	if b < 0 || int(b) >= ButtonCount {
		return EdgeIdle
	}
	return f.edges[b]
}

// IsDown returns true while the button is held, including the press tick.
func (f InputFrame) IsDown(b ButtonID) bool {
	return f.Edge(b).Down()
}

// TookEdge returns the transition of the button this tick, if any.
func (f InputFrame) TookEdge(b ButtonID) (Edge, bool) {
	e := f.Edge(b)
	if e == EdgePressed || e == EdgeReleased {
		return e, true
	}
	return e, false
}

// Pressed returns true only on the tick the button went down.
func (f InputFrame) Pressed(b ButtonID) bool {
	return f.Edge(b) == EdgePressed
}

// Released returns true only on the tick the button went up.
func (f InputFrame) Released(b ButtonID) bool {
	return f.Edge(b) == EdgeReleased
}

// Any returns true if any button is down.
func (f InputFrame) Any() bool {
	for _, e := range f.edges {
		if e.Down() {
			return true
		}
	}
	return false
}

// Clear resets all buttons to idle.
func (f *InputFrame) Clear() {
	f.edges = [ButtonCount]Edge{}
}

// Levels builds a frame from raw levels and the previous frame.
// Used by tests and scripted input that need no debouncing.
func Levels(prev InputFrame, down [ButtonCount]bool) InputFrame {
	var f InputFrame
	for i := range down {
		was := prev.edges[i].Down()
		switch {
		case down[i] && was:
			f.edges[i] = EdgeHeld
		case down[i]:
			f.edges[i] = EdgePressed
		case was:
			f.edges[i] = EdgeReleased
		default:
			f.edges[i] = EdgeIdle
		}
	}
	return f
}
