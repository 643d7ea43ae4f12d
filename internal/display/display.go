// Package display defines the drawing surface the presenter talks to
// and a double-buffered framebuffer implementation of it.
package display

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Display is a 1-bit panel with a separate commit step.
// Drawing calls change an off-screen buffer; Show makes it visible.
type Display interface {
	Fill(c core.Color)
	FillRect(x, y, w, h int, c core.Color)
	Rect(x, y, w, h int, c core.Color)
	Text(s string, x, y int, c core.Color)
	Show() error
}

// Sink receives every committed frame. dirty bounds the pixels that
// changed since the previous commit and is never empty.
type Sink interface {
	Flush(frame *core.Screen, dirty core.Rect) error
}

// Framebuffer is a Display backed by core.Screen buffers.
// Primitives draw into the back buffer. Show hands it to the sink and,
// on success, copies it to the front buffer read by viewers.
type Framebuffer struct {
	mu      sync.RWMutex
	back    *core.Screen
	front   *core.Screen
	sink    Sink
	commits int
}

// NewFramebuffer creates a panel-sized framebuffer. sink may be nil.
func NewFramebuffer(sink Sink) *Framebuffer {
	return &Framebuffer{
		back:  core.NewScreen(core.ScreenW, core.ScreenH),
		front: core.NewScreen(core.ScreenW, core.ScreenH),
		sink:  sink,
	}
}

func (f *Framebuffer) Fill(c core.Color) {
	f.back.Fill(c)
}

func (f *Framebuffer) FillRect(x, y, w, h int, c core.Color) {
	f.back.FillRect(core.NewRect(x, y, w, h), c)
}

func (f *Framebuffer) Rect(x, y, w, h int, c core.Color) {
	f.back.DrawRect(core.NewRect(x, y, w, h), c)
}

func (f *Framebuffer) Text(s string, x, y int, c core.Color) {
	f.back.DrawText(x, y, s, c)
}

// Show commits the back buffer. A sink error leaves the front buffer
// unchanged and is returned to the caller without retrying.
func (f *Framebuffer) Show() error {
	dirty := f.back.Dirty()
	if f.sink != nil && !dirty.Empty() {
		if err := f.sink.Flush(f.back, dirty); err != nil {
			return fmt.Errorf("display: flush failed: %w", err)
		}
	}
	f.back.ResetDirty()

	f.mu.Lock()
	f.front.CopyFrom(f.back)
	f.commits++
	f.mu.Unlock()
	return nil
}

// Snapshot copies the last committed frame into dst.
func (f *Framebuffer) Snapshot(dst *core.Screen) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	dst.CopyFrom(f.front)
}

// Front returns the last committed frame. Callers must not modify it
// and must not hold it across a concurrent Show.
func (f *Framebuffer) Front() *core.Screen {
	return f.front
}

// Commits returns how many times Show succeeded.
func (f *Framebuffer) Commits() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.commits
}
