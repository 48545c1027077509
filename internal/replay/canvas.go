package replay

import (
	"image"

	"github.com/wesen/rubberband/pkg/graphmodel"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/viewport"
)

type box struct {
	Label string
	R     image.Rectangle
}

func (b box) Pos() image.Point  { return b.R.Min }
func (b box) Size() image.Point { return b.R.Size() }

// memCanvas is an in-memory rubberband.Canvas over a fixed set of boxes.
type memCanvas struct {
	graph *graphmodel.Graph[box, struct{}]
	cam   *viewport.Camera
	// zoom is what Zoom reports. Invalid scenario zooms are passed through
	// so the engine's clamping can be replayed; the camera stays at 1.
	zoom float64
	// translateCalls counts TranslateBy calls.
	translateCalls int
}

var _ rubberband.Canvas = (*memCanvas)(nil)

func newMemCanvas(s *Scenario) *memCanvas {
	g := graphmodel.New[box, struct{}]()
	for _, n := range s.Nodes {
		g.AddNode(box{Label: n.Label, R: image.Rect(n.X, n.Y, n.X+n.W, n.Y+n.H)})
	}
	cam := viewport.New(image.Rect(0, 0, s.Container.Width, s.Container.Height))
	zoom := s.Zoom
	if rubberband.ClampZoom(zoom) == zoom {
		cam.ZoomAt(zoom, image.Point{})
		zoom = cam.Zoom()
	}
	return &memCanvas{graph: g, cam: cam, zoom: zoom}
}

func (c *memCanvas) Zoom() float64            { return c.zoom }
func (c *memCanvas) Translation() image.Point { return c.cam.Translation() }
func (c *memCanvas) Bounds() image.Rectangle  { return c.cam.Bounds() }

func (c *memCanvas) TranslateBy(dx, dy int) {
	c.translateCalls++
	c.cam.TranslateBy(dx, dy)
}

func (c *memCanvas) SelectInRect(screen image.Rectangle, _ rubberband.Modifiers) []int {
	return c.graph.IDsInRect(c.cam.ToWorldRect(screen))
}
