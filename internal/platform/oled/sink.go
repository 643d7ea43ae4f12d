// Package oled runs the arcade on real hardware: an SSD1306 panel on
// I²C and six push-buttons on GPIO, through periph.io.
package oled

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Drawer is the part of the SSD1306 driver the sink uses.
type Drawer interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// Sink copies committed frames to the panel. Only the dirty rectangle
// is converted and sent; the driver narrows the transfer further to the
// pages and columns that changed.
type Sink struct {
	dev Drawer
	img *image1bit.VerticalLSB
}

// NewSink creates a sink drawing on dev.
func NewSink(dev Drawer) *Sink {
	return &Sink{
		dev: dev,
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, core.ScreenW, core.ScreenH)),
	}
}

// Flush implements display.Sink.
func (s *Sink) Flush(frame *core.Screen, dirty core.Rect) error {
	dirty = dirty.Intersect(frame.Bounds())
	if dirty.Empty() {
		return nil
	}
	for y := dirty.Y; y < dirty.Bottom(); y++ {
		for x := dirty.X; x < dirty.Right(); x++ {
			s.img.SetBit(x, y, image1bit.Bit(frame.Get(x, y) == core.ColorOn))
		}
	}

	r := image.Rect(dirty.X, dirty.Y, dirty.Right(), dirty.Bottom())
	if err := s.dev.Draw(r, s.img, r.Min); err != nil {
		return fmt.Errorf("oled: draw %v: %w", r, err)
	}
	return nil
}

// Image returns the sink's copy of the panel contents.
func (s *Sink) Image() *image1bit.VerticalLSB {
	return s.img
}
