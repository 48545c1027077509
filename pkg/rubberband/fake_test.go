package rubberband

import (
	"image"
	"sort"
)

// fakeCanvas records pan calls and selects by plain rectangle overlap in
// screen space.
type fakeCanvas struct {
	zoom      float64
	bounds    image.Rectangle
	translate image.Point
	calls     []image.Point
	nodes     map[int]image.Rectangle // canvas space
	lastRect  image.Rectangle
	lastMods  Modifiers
	selects   int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{
		zoom:   1,
		bounds: image.Rect(0, 0, w, h),
		nodes:  map[int]image.Rectangle{},
	}
}

func (f *fakeCanvas) Zoom() float64            { return f.zoom }
func (f *fakeCanvas) Translation() image.Point { return f.translate }
func (f *fakeCanvas) Bounds() image.Rectangle  { return f.bounds }

func (f *fakeCanvas) TranslateBy(dx, dy int) {
	f.calls = append(f.calls, image.Pt(dx, dy))
	f.translate = f.translate.Add(image.Pt(dx, dy))
}

func (f *fakeCanvas) SelectInRect(screen image.Rectangle, mods Modifiers) []int {
	f.selects++
	f.lastRect = screen
	f.lastMods = mods
	world := screen.Sub(f.translate)
	var ids []int
	for id, r := range f.nodes {
		if r.Overlaps(world) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

type recordingOverlay struct {
	rects []Rect
}

func (o *recordingOverlay) Draw(r Rect) { o.rects = append(o.rects, r) }

type allowAll struct{}

func (allowAll) Allow(Synthesis, int) bool { return true }
