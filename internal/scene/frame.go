package scene

import (
	"fmt"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Frame is an ordered snapshot of everything that should be visible.
// Insertion order is z-order: later objects are drawn over earlier ones.
type Frame struct {
	objects []Object
	index   map[string]int
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{index: make(map[string]int)}
}

// Add appends an object on top of the frame.
// A duplicate ID is a programming error and panics.
func (f *Frame) Add(o Object) {
	if f.index == nil {
		f.index = make(map[string]int)
	}
	if _, dup := f.index[o.ID]; dup {
		panic(fmt.Sprintf("scene: duplicate object id %q", o.ID))
	}
	f.index[o.ID] = len(f.objects)
	f.objects = append(f.objects, o)
}

// Objects returns the objects in z-order. The slice must not be modified.
func (f *Frame) Objects() []Object {
	if f == nil {
		return nil
	}
	return f.objects
}

// Len returns the number of objects.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.objects)
}

// Lookup returns the object with the given ID and its z-index.
func (f *Frame) Lookup(id string) (Object, int, bool) {
	if f == nil {
		return Object{}, -1, false
	}
	i, ok := f.index[id]
	if !ok {
		return Object{}, -1, false
	}
	return f.objects[i], i, true
}

// Reset empties the frame for reuse.
func (f *Frame) Reset() {
	f.objects = f.objects[:0]
	for k := range f.index {
		delete(f.index, k)
	}
}

// Render draws the frame into s from scratch.
// This is the reference every incremental update must match.
func Render(f *Frame, s *core.Screen) {
	s.Clear()
	for _, o := range f.Objects() {
		o.Draw(s)
	}
}
