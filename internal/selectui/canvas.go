package selectui

import (
	"image"
	"log/slog"
	"slices"

	"github.com/wesen/rubberband/internal/selectfilter"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/viewport"
)

// Canvas is the terminal graph canvas. It owns the camera and the
// selection and is the collaborator handed to the rubberband controller.
type Canvas struct {
	graph    *Graph
	cam      *viewport.Camera
	filter   *selectfilter.Filter
	selected map[int]bool
	log      *slog.Logger
}

var _ rubberband.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas over g showing the screen region bounds.
func NewCanvas(g *Graph, bounds image.Rectangle, log *slog.Logger) *Canvas {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Canvas{
		graph:    g,
		cam:      viewport.New(bounds),
		selected: make(map[int]bool),
		log:      log,
	}
}

// Camera returns the viewport transform.
func (c *Canvas) Camera() *viewport.Camera { return c.cam }

// Graph returns the graph shown on the canvas.
func (c *Canvas) Graph() *Graph { return c.graph }

// Zoom implements rubberband.Canvas.
func (c *Canvas) Zoom() float64 { return c.cam.Zoom() }

// TranslateBy implements rubberband.Canvas.
func (c *Canvas) TranslateBy(dx, dy int) { c.cam.TranslateBy(dx, dy) }

// Translation implements rubberband.Canvas.
func (c *Canvas) Translation() image.Point { return c.cam.Translation() }

// Bounds implements rubberband.Canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.cam.Bounds() }

// SelectInRect implements rubberband.Canvas. The hit nodes replace the
// selection, or are added to it when shift was held at pointer-down.
func (c *Canvas) SelectInRect(screen image.Rectangle, mods rubberband.Modifiers) []int {
	ids := c.Hits(screen)
	if !mods.Has(rubberband.ModShift) {
		clear(c.selected)
	}
	for _, id := range ids {
		c.selected[id] = true
	}
	c.log.Info("selection committed", "rect", screen, "hits", len(ids), "selected", len(c.selected))
	return ids
}

// Hits returns the ids of the nodes a screen rectangle covers after the
// filter, without touching the selection. It drives the live preview.
func (c *Canvas) Hits(screen image.Rectangle) []int {
	world := c.cam.ToWorldRect(screen)
	ids := c.graph.IDsInRect(world)
	return c.filter.Apply(ids, func(id int) (selectfilter.Node, bool) {
		return filterNode(c.graph, id)
	})
}

// NodeAt returns the id of the node under screen cell p, or -1.
func (c *Canvas) NodeAt(p image.Point) int {
	n := c.graph.HitTest(c.cam.ToWorld(p))
	if n == nil {
		return -1
	}
	return n.ID
}

// SetFilter replaces the selection filter; nil removes it.
func (c *Canvas) SetFilter(f *selectfilter.Filter) { c.filter = f }

// Filter returns the active filter, possibly nil.
func (c *Canvas) Filter() *selectfilter.Filter { return c.filter }

// Selected returns the selected ids in ascending order.
func (c *Canvas) Selected() []int {
	ids := make([]int, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsSelected reports whether id is selected.
func (c *Canvas) IsSelected(id int) bool { return c.selected[id] }

// Select replaces the selection with id.
func (c *Canvas) Select(id int) {
	clear(c.selected)
	c.selected[id] = true
}

// Toggle flips id in the selection.
func (c *Canvas) Toggle(id int) {
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

// SelectAll selects every node that passes the filter.
func (c *Canvas) SelectAll() {
	clear(c.selected)
	ids := c.filter.Apply(c.graph.IDs(), func(id int) (selectfilter.Node, bool) {
		return filterNode(c.graph, id)
	})
	for _, id := range ids {
		c.selected[id] = true
	}
}

// ClearSelection empties the selection.
func (c *Canvas) ClearSelection() { clear(c.selected) }

// DeleteSelected removes the selected nodes from the graph and returns
// how many were removed.
func (c *Canvas) DeleteSelected() int {
	n := len(c.selected)
	for id := range c.selected {
		c.graph.RemoveNode(id)
	}
	clear(c.selected)
	return n
}
