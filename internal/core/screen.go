package core

import (
	"strings"
)

// Screen is a 1-bit pixel buffer the size of the panel.
// It decouples drawing from the device, so the same pixels can be
// pushed to an SSD1306, printed in a terminal, or compared in tests.
// Every write extends the dirty rectangle until ResetDirty is called.
type Screen struct {
	width  int
	height int
	pix    []Color
	dirty  Rect
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full screen rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear turns every pixel off.
func (s *Screen) Clear() {
	s.Fill(ColorOff)
}

// Fill sets every pixel to c.
func (s *Screen) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
	s.touch(s.Bounds())
}

// Set changes the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
	s.touch(NewRect(x, y, 1, 1))
}

// Get returns the pixel at (x, y).
// Returns ColorOff for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorOff
	}
	return s.pix[y*s.width+x]
}

// FillRect fills a rectangular area, clipped to the screen.
func (s *Screen) FillRect(r Rect, c Color) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
	s.touch(r)
}

// DrawRect draws a one-pixel outline of r.
func (s *Screen) DrawRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	s.DrawHLine(r.X, r.Y, r.W, c)
	s.DrawHLine(r.X, r.Bottom()-1, r.W, c)
	s.DrawVLine(r.X, r.Y, r.H, c)
	s.DrawVLine(r.Right()-1, r.Y, r.H, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, c Color) {
	s.FillRect(NewRect(x, y, length, 1), c)
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, c Color) {
	s.FillRect(NewRect(x, y, 1, length), c)
}

// DrawText writes a string starting at (x, y) in 6x8 cells.
// Only ink pixels are written; the background shows through.
// Glyphs that extend beyond the screen are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		g := Glyph(r)
		ox := x + i*GlyphW
		for col, bits := range g {
			for row := 0; row < 7; row++ {
				if bits&(1<<row) != 0 {
					s.Set(ox+col, y+row, c)
				}
			}
		}
		i++
	}
}

// CopyFrom overwrites s with the pixels of src. Sizes must match.
func (s *Screen) CopyFrom(src *Screen) {
	copy(s.pix, src.pix)
	s.touch(s.Bounds())
}

// Equal reports whether two screens hold identical pixels.
func (s *Screen) Equal(other *Screen) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for i := range s.pix {
		if s.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// DiffCount returns how many pixels differ between two equally sized screens.
func (s *Screen) DiffCount(other *Screen) int {
	n := 0
	for i := range s.pix {
		if i < len(other.pix) && s.pix[i] != other.pix[i] {
			n++
		}
	}
	return n
}

// CountOn returns the number of lit pixels.
func (s *Screen) CountOn() int {
	n := 0
	for _, c := range s.pix {
		if c == ColorOn {
			n++
		}
	}
	return n
}

// Dirty returns the bounding rectangle of writes since the last ResetDirty.
func (s *Screen) Dirty() Rect {
	return s.dirty
}

// ResetDirty forgets accumulated writes.
func (s *Screen) ResetDirty() {
	s.dirty = Rect{}
}

func (s *Screen) touch(r Rect) {
	s.dirty = s.dirty.Union(r)
}

// String converts the screen to text, '#' for lit pixels and '.' for dark.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string of '#' and '.'.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(".", s.width)
	}
	b := make([]byte, s.width)
	for x := 0; x < s.width; x++ {
		if s.pix[y*s.width+x] == ColorOn {
			b[x] = '#'
		} else {
			b[x] = '.'
		}
	}
	return string(b)
}
