package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(128, 64)

	if s.Width() != 128 {
		t.Errorf("Width() = %d, expected 128", s.Width())
	}
	if s.Height() != 64 {
		t.Errorf("Height() = %d, expected 64", s.Height())
	}
	if s.CountOn() != 0 {
		t.Errorf("New screen should be dark, %d pixels lit", s.CountOn())
	}
	if !s.Dirty().Empty() {
		t.Errorf("New screen should have no dirty area, got %+v", s.Dirty())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, ColorOn)
	if s.Get(5, 5) != ColorOn {
		t.Errorf("Get(5, 5) = %v, expected on", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorOn)  // Should not panic
	s.Set(100, 0, ColorOn) // Should not panic
	s.Set(0, -1, ColorOn)  // Should not panic
	s.Set(0, 100, ColorOn) // Should not panic

	if s.Get(-1, 0) != ColorOff {
		t.Error("Out of bounds Get should return off")
	}
	if s.CountOn() != 1 {
		t.Errorf("CountOn() = %d, expected 1", s.CountOn())
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill(ColorOn)
	if s.CountOn() != 25 {
		t.Errorf("After Fill, CountOn() = %d, expected 25", s.CountOn())
	}

	s.Clear()
	if s.CountOn() != 0 {
		t.Errorf("After Clear, CountOn() = %d, expected 0", s.CountOn())
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), ColorOn)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != ColorOn {
				t.Errorf("FillRect: expected on at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(1, 1) != ColorOff || s.Get(5, 5) != ColorOff {
		t.Error("FillRect should not affect outside area")
	}

	// Clipped at the edge
	s.FillRect(NewRect(8, 8, 5, 5), ColorOn)
	if s.CountOn() != 9+4 {
		t.Errorf("CountOn() = %d, expected 13", s.CountOn())
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(1, 1, 5, 4), ColorOn)

	// 5x4 outline has 2*5 + 2*2 pixels
	if s.CountOn() != 14 {
		t.Errorf("CountOn() = %d, expected 14", s.CountOn())
	}
	if s.Get(3, 2) != ColorOff {
		t.Error("Outline interior should stay dark")
	}
	if s.Get(5, 4) != ColorOn {
		t.Error("Bottom-right corner should be lit")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, ColorOn)
	s.DrawVLine(3, 4, 4, ColorOn)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != ColorOn {
			t.Errorf("DrawHLine: expected on at (%d, 2)", x)
		}
	}
	for y := 4; y < 8; y++ {
		if s.Get(3, y) != ColorOn {
			t.Errorf("DrawVLine: expected on at (3, %d)", y)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(128, 64)
	s.DrawText(0, 0, "I", ColorOn)

	// 'I' is a vertical bar in column 2 with serifs in columns 1 and 3
	for y := 0; y < 7; y++ {
		if s.Get(2, y) != ColorOn {
			t.Errorf("expected stem of 'I' at (2, %d)", y)
		}
	}
	if s.Get(0, 3) != ColorOff || s.Get(5, 3) != ColorOff {
		t.Error("glyph spacing column should stay dark")
	}
	if s.Get(2, 7) != ColorOff {
		t.Error("row 7 is spacing and should stay dark")
	}

	// Transparent background: drawing a space changes nothing
	before := s.CountOn()
	s.DrawText(0, 0, " ", ColorOn)
	if s.CountOn() != before {
		t.Error("space should not draw any pixels")
	}

	// Ink off erases only the glyph pixels
	s.Fill(ColorOn)
	s.DrawText(10, 10, "I", ColorOff)
	if s.Get(12, 12) != ColorOff {
		t.Error("off ink should clear the glyph stem")
	}
	if s.Get(10, 12) != ColorOn {
		t.Error("off ink should leave background pixels lit")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(8, 8)
	s.DrawText(4, 0, "HH", ColorOn) // second glyph is fully off-screen

	if s.Get(4, 3) != ColorOn {
		t.Error("first column of 'H' should be visible")
	}
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		text string
		w, h int
	}{
		{"", 0, 0},
		{"A", 5, 7},
		{"Score: 10", 53, 7},
		{"é", 5, 7},
	}
	for _, tc := range tests {
		w, h := TextSize(tc.text)
		if w != tc.w || h != tc.h {
			t.Errorf("TextSize(%q) = (%d, %d), expected (%d, %d)", tc.text, w, h, tc.w, tc.h)
		}
	}
}

func TestGlyphFallback(t *testing.T) {
	if Glyph('é') != Glyph('?') {
		t.Error("non-ASCII runes should render as '?'")
	}
	if Glyph(' ') != [5]byte{} {
		t.Error("space glyph should be blank")
	}
}

func TestScreenDirty(t *testing.T) {
	s := NewScreen(20, 20)
	s.Set(3, 4, ColorOn)
	s.FillRect(NewRect(10, 10, 2, 2), ColorOff)

	if got := s.Dirty(); got != NewRect(3, 4, 9, 8) {
		t.Errorf("Dirty() = %+v, expected {3 4 9 8}", got)
	}

	s.ResetDirty()
	if !s.Dirty().Empty() {
		t.Error("ResetDirty should clear the dirty area")
	}
}

func TestScreenEqualAndCopy(t *testing.T) {
	a := NewScreen(8, 8)
	b := NewScreen(8, 8)
	a.Set(1, 1, ColorOn)
	a.Set(2, 2, ColorOn)

	if a.Equal(b) {
		t.Error("screens with different pixels should not be equal")
	}
	if a.DiffCount(b) != 2 {
		t.Errorf("DiffCount() = %d, expected 2", a.DiffCount(b))
	}

	b.CopyFrom(a)
	if !a.Equal(b) {
		t.Error("screens should be equal after CopyFrom")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, ColorOn)
	s.Set(2, 1, ColorOn)

	if got := s.String(); got != "#..\n..#" {
		t.Errorf("String() = %q, expected %q", got, "#..\n..#")
	}
	if got := s.Row(-1); got != strings.Repeat(".", 3) {
		t.Errorf("Out of bounds row should be dark, got %q", got)
	}
}
