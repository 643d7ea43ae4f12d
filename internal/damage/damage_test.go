package damage

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

func frameOf(objs ...scene.Object) *scene.Frame {
	f := scene.NewFrame()
	for _, o := range objs {
		f.Add(o)
	}
	return f
}

// patched applies Diff(prev, next) to a full render of prev.
func patched(prev, next *scene.Frame) *core.Screen {
	s := core.NewScreen(core.ScreenW, core.ScreenH)
	scene.Render(prev, s)
	Apply(s, Diff(prev, next))
	return s
}

func rendered(f *scene.Frame) *core.Screen {
	s := core.NewScreen(core.ScreenW, core.ScreenH)
	scene.Render(f, s)
	return s
}

func TestDiffUnchanged(t *testing.T) {
	f := frameOf(
		scene.Box("paddle", core.NewRect(0, 42, 5, 10), core.ColorOn),
		scene.Label("score", 5, 5, "P2: 0", core.ColorOn),
	)
	if got := Diff(f, f); len(got) != 0 {
		t.Errorf("identical frames should produce no regions, got %d", len(got))
	}
}

func TestDiffSolidMoveOnePixel(t *testing.T) {
	prev := frameOf(scene.Box("paddle", core.NewRect(123, 42, 5, 10), core.ColorOn))
	next := frameOf(scene.Box("paddle", core.NewRect(123, 41, 5, 10), core.ColorOn))

	regions := Diff(prev, next)
	if len(regions) != 2 {
		t.Fatalf("expected erase and draw strips, got %d regions", len(regions))
	}
	if regions[0].Op != OpErase || regions[0].Rect != core.NewRect(123, 51, 5, 1) {
		t.Errorf("erase = %+v, expected bottom row", regions[0])
	}
	if regions[1].Op != OpDraw || regions[1].Rect != core.NewRect(123, 41, 5, 1) {
		t.Errorf("draw = %+v, expected new top row", regions[1])
	}
	if Area(regions) != 10 {
		t.Errorf("Area() = %d, expected 10", Area(regions))
	}
	if !patched(prev, next).Equal(rendered(next)) {
		t.Error("patched screen differs from full redraw")
	}
}

func TestDiffRemovedAndAdded(t *testing.T) {
	prev := frameOf(scene.Box("food", core.NewRect(20, 20, 4, 4), core.ColorOn))
	next := frameOf(scene.Box("food2", core.NewRect(40, 40, 4, 4), core.ColorOn))

	regions := Diff(prev, next)
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Op != OpErase || regions[0].Rect != core.NewRect(20, 20, 4, 4) {
		t.Errorf("first region should erase the removed object, got %+v", regions[0])
	}
	if regions[1].Op != OpDraw || regions[1].Object.ID != "food2" {
		t.Errorf("second region should draw the added object, got %+v", regions[1])
	}
}

func TestDiffErasesBeforeDraws(t *testing.T) {
	prev := frameOf(
		scene.Label("a", 0, 0, "one", core.ColorOn),
		scene.Label("b", 0, 20, "two", core.ColorOn),
	)
	next := frameOf(
		scene.Label("a", 0, 0, "uno", core.ColorOn),
		scene.Label("b", 0, 20, "dos", core.ColorOn),
	)

	seenDraw := false
	for _, r := range Diff(prev, next) {
		if r.Op == OpDraw {
			seenDraw = true
		} else if seenDraw {
			t.Fatal("erase region after a draw region")
		}
	}
}

func TestDiffRedrawsObjectUnderErase(t *testing.T) {
	// Text changes on top of a solid HUD bar; the bar must be restored.
	prev := frameOf(
		scene.Box("bar", core.NewRect(0, 0, 128, 20), core.ColorOn),
		scene.Label("score", 5, 5, "P2: 1", core.ColorOff),
		scene.Box("ball", core.NewRect(64, 42, 4, 4), core.ColorOn),
	)
	next := frameOf(
		scene.Box("bar", core.NewRect(0, 0, 128, 20), core.ColorOn),
		scene.Label("score", 5, 5, "P2: 2", core.ColorOff),
		scene.Box("ball", core.NewRect(64, 42, 4, 4), core.ColorOn),
	)

	regions := Diff(prev, next)
	var drew []string
	for _, r := range regions {
		if r.Op == OpDraw {
			drew = append(drew, r.Object.ID)
		}
	}
	if fmt.Sprint(drew) != "[bar score]" {
		t.Errorf("drawn objects = %v, expected [bar score]", drew)
	}
	if !patched(prev, next).Equal(rendered(next)) {
		t.Error("patched screen differs from full redraw")
	}
}

func TestDiffCursorMoveDamagesBothCells(t *testing.T) {
	cell := func(x, y int, cursor bool) scene.Object {
		r := core.NewRect(x*8+1, y*8, 6, 6)
		if cursor {
			r = core.NewRect(x*8, y*8, 7, 7)
		}
		return scene.Box(fmt.Sprintf("cell:%d:%d", x, y), r, core.ColorOn)
	}
	prev := frameOf(cell(0, 0, true), cell(1, 0, false), cell(2, 0, false))
	next := frameOf(cell(0, 0, false), cell(1, 0, true), cell(2, 0, false))

	touched := map[string]bool{}
	for _, r := range Diff(prev, next) {
		if r.Op == OpErase {
			if r.Rect.Intersects(core.NewRect(0, 0, 8, 8)) {
				touched["cell:0:0"] = true
			}
		} else {
			touched[r.Object.ID] = true
		}
	}
	if !touched["cell:0:0"] || !touched["cell:1:0"] {
		t.Errorf("both old and new cursor cells should be damaged, got %v", touched)
	}
	if touched["cell:2:0"] {
		t.Error("untouched cell should not be redrawn")
	}
	if !patched(prev, next).Equal(rendered(next)) {
		t.Error("patched screen differs from full redraw")
	}
}

func TestDiffReorder(t *testing.T) {
	a := scene.Box("a", core.NewRect(10, 10, 10, 10), core.ColorOn)
	b := scene.Box("b", core.NewRect(15, 15, 10, 10), core.ColorOff)
	prev := frameOf(a, b)
	next := frameOf(b, a)

	if !patched(prev, next).Equal(rendered(next)) {
		t.Error("z-order change not reflected")
	}
}

func TestFull(t *testing.T) {
	next := frameOf(
		scene.Box("a", core.NewRect(0, 0, 4, 4), core.ColorOn),
		scene.Object{ID: "empty"},
	)
	regions := Full(next)
	if len(regions) != 2 {
		t.Fatalf("expected screen erase plus one draw, got %d", len(regions))
	}
	if regions[0].Op != OpErase || regions[0].Rect != Screen {
		t.Errorf("first region should erase the whole screen, got %+v", regions[0])
	}

	s := core.NewScreen(core.ScreenW, core.ScreenH)
	s.Fill(core.ColorOn)
	Apply(s, regions)
	if !s.Equal(rendered(next)) {
		t.Error("Full regions should reproduce a full redraw")
	}
}

// randomObject returns a small random object of any supported shape.
func randomObject(rng *rand.Rand, id string) scene.Object {
	r := core.NewRect(rng.Intn(130)-2, rng.Intn(66)-2, rng.Intn(20)+1, rng.Intn(14)+1)
	c := core.Color(rng.Intn(2))
	switch rng.Intn(5) {
	case 0, 1:
		return scene.Box(id, r, c)
	case 2:
		return scene.Border(id, r, c)
	case 3:
		return scene.Label(id, r.X, r.Y, fmt.Sprintf("%d", rng.Intn(1000)), core.ColorOn)
	default:
		return scene.Box(id, r, c).WithText(string(rune('A'+rng.Intn(26))), r.X+1, r.Y, c.Invert())
	}
}

// mutate derives a plausible next frame from prev.
func mutate(rng *rand.Rand, prev *scene.Frame, nextID *int) *scene.Frame {
	objs := append([]scene.Object(nil), prev.Objects()...)
	if len(objs) > 1 && rng.Intn(8) == 0 {
		i, j := rng.Intn(len(objs)), rng.Intn(len(objs))
		objs[i], objs[j] = objs[j], objs[i]
	}

	next := scene.NewFrame()
	for _, o := range objs {
		switch rng.Intn(10) {
		case 0: // removed
			continue
		case 1, 2: // nudged
			o.Bounds.X += rng.Intn(3) - 1
			o.Bounds.Y += rng.Intn(3) - 1
			o.TextAt = core.Point{X: o.Bounds.X + 1, Y: o.Bounds.Y}
			if o.Text != "" {
				o = scene.Object{ID: o.ID, Filled: o.Filled, FillColor: o.FillColor,
					Bounds: core.NewRect(o.Bounds.X, o.Bounds.Y, 1, 1)}.WithText(o.Text, o.Bounds.X, o.Bounds.Y, o.Ink)
			}
		case 3: // replaced
			o = randomObject(rng, o.ID)
		}
		next.Add(o)
	}
	for n := rng.Intn(3); n > 0; n-- {
		*nextID++
		next.Add(randomObject(rng, fmt.Sprintf("obj%d", *nextID)))
	}
	return next
}

func TestDiffMatchesFullRedraw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	id := 0

	for round := 0; round < 200; round++ {
		prev := scene.NewFrame()
		for n := rng.Intn(12); n > 0; n-- {
			id++
			prev.Add(randomObject(rng, fmt.Sprintf("obj%d", id)))
		}

		for step := 0; step < 10; step++ {
			next := mutate(rng, prev, &id)
			got := patched(prev, next)
			want := rendered(next)
			if !got.Equal(want) {
				t.Fatalf("round %d step %d: %d pixels differ from full redraw", round, step, got.DiffCount(want))
			}
			prev = next
		}
	}
}
