package core

import "testing"

func TestInputFrameViews(t *testing.T) {
	var f InputFrame
	f.Set(ButtonUp, EdgePressed)
	f.Set(ButtonA, EdgeHeld)
	f.Set(ButtonB, EdgeReleased)

	tests := []struct {
		button   ButtonID
		down     bool
		edge     Edge
		hasEdge  bool
		pressed  bool
		released bool
	}{
		{ButtonUp, true, EdgePressed, true, true, false},
		{ButtonA, true, EdgeHeld, false, false, false},
		{ButtonB, false, EdgeReleased, true, false, true},
		{ButtonLeft, false, EdgeIdle, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.button.String(), func(t *testing.T) {
			if f.IsDown(tc.button) != tc.down {
				t.Errorf("IsDown() = %v, expected %v", f.IsDown(tc.button), tc.down)
			}
			e, ok := f.TookEdge(tc.button)
			if e != tc.edge || ok != tc.hasEdge {
				t.Errorf("TookEdge() = (%v, %v), expected (%v, %v)", e, ok, tc.edge, tc.hasEdge)
			}
			if f.Pressed(tc.button) != tc.pressed {
				t.Errorf("Pressed() = %v, expected %v", f.Pressed(tc.button), tc.pressed)
			}
			if f.Released(tc.button) != tc.released {
				t.Errorf("Released() = %v, expected %v", f.Released(tc.button), tc.released)
			}
		})
	}

	if !f.Any() {
		t.Error("Any() should be true while buttons are down")
	}
	f.Clear()
	if f.Any() {
		t.Error("Any() should be false after Clear")
	}
}

func TestInputFrameInvalidButton(t *testing.T) {
	var f InputFrame
	f.Set(ButtonID(42), EdgePressed) // Should not panic
	if f.IsDown(ButtonID(42)) {
		t.Error("invalid button should never be down")
	}
}

func TestLevels(t *testing.T) {
	var down [ButtonCount]bool
	down[ButtonLeft] = true

	f1 := Levels(InputFrame{}, down)
	if !f1.Pressed(ButtonLeft) {
		t.Error("first down level should be a press")
	}

	f2 := Levels(f1, down)
	if f2.Edge(ButtonLeft) != EdgeHeld {
		t.Errorf("second down level should be held, got %v", f2.Edge(ButtonLeft))
	}

	f3 := Levels(f2, [ButtonCount]bool{})
	if !f3.Released(ButtonLeft) {
		t.Error("up level after down should be a release")
	}

	f4 := Levels(f3, [ButtonCount]bool{})
	if f4.Edge(ButtonLeft) != EdgeIdle {
		t.Errorf("expected idle, got %v", f4.Edge(ButtonLeft))
	}
}

func TestParseButton(t *testing.T) {
	for _, b := range Buttons {
		got, ok := ParseButton(b.String())
		if !ok || got != b {
			t.Errorf("ParseButton(%q) = (%v, %v)", b.String(), got, ok)
		}
	}
	if _, ok := ParseButton("start"); ok {
		t.Error("unknown label should not parse")
	}
}
