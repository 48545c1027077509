// Package viewport provides the pan/zoom transform between canvas (world)
// coordinates and screen cells.
//
//	screen = origin + translate + world*zoom
//
// translate is in screen cells, so a positive X moves content right.
package viewport

import (
	"image"
	"math"
)

const (
	MinZoom = 0.5
	MaxZoom = 4.0
)

// Camera is the viewport transform of a canvas region.
type Camera struct {
	bounds    image.Rectangle
	translate image.Point
	zoom      float64
}

// New creates a camera for the given screen region at zoom 1.
func New(bounds image.Rectangle) *Camera {
	return &Camera{bounds: bounds, zoom: 1}
}

// SetBounds updates the screen region, e.g. after a terminal resize.
func (c *Camera) SetBounds(r image.Rectangle) { c.bounds = r }

// Bounds returns the screen region.
func (c *Camera) Bounds() image.Rectangle { return c.bounds }

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom]. The world
// point under the region's center stays put.
func (c *Camera) SetZoom(z float64) {
	c.ZoomAt(z, image.Pt(
		(c.bounds.Min.X+c.bounds.Max.X)/2,
		(c.bounds.Min.Y+c.bounds.Max.Y)/2,
	))
}

// ZoomAt sets the zoom factor, clamped to [MinZoom, MaxZoom], keeping the
// world point under screen cell pivot in place.
func (c *Camera) ZoomAt(z float64, pivot image.Point) {
	if math.IsNaN(z) {
		return
	}
	z = math.Max(MinZoom, math.Min(MaxZoom, z))
	if z == c.zoom {
		return
	}
	wx, wy := c.toWorldF(pivot)
	c.zoom = z
	c.translate = image.Pt(
		pivot.X-c.bounds.Min.X-int(math.Round(wx*z)),
		pivot.Y-c.bounds.Min.Y-int(math.Round(wy*z)),
	)
}

// TranslateBy shifts the content by (dx, dy) cells.
func (c *Camera) TranslateBy(dx, dy int) {
	c.translate = c.translate.Add(image.Pt(dx, dy))
}

// Translation returns the current translation.
func (c *Camera) Translation() image.Point { return c.translate }

// Reset restores zero translation and zoom 1.
func (c *Camera) Reset() {
	c.translate = image.Point{}
	c.zoom = 1
}

// ToScreen maps a world point to a screen cell.
func (c *Camera) ToScreen(w image.Point) image.Point {
	return image.Pt(
		c.bounds.Min.X+c.translate.X+int(math.Round(float64(w.X)*c.zoom)),
		c.bounds.Min.Y+c.translate.Y+int(math.Round(float64(w.Y)*c.zoom)),
	)
}

// ScaleSize maps a world size to screen cells, never below one cell.
func (c *Camera) ScaleSize(sz image.Point) image.Point {
	w := int(math.Round(float64(sz.X) * c.zoom))
	h := int(math.Round(float64(sz.Y) * c.zoom))
	return image.Pt(max(w, 1), max(h, 1))
}

// ToWorld maps a screen cell to the world point it shows.
func (c *Camera) ToWorld(s image.Point) image.Point {
	wx, wy := c.toWorldF(s)
	return image.Pt(int(math.Floor(wx)), int(math.Floor(wy)))
}

// ToWorldRect maps a screen rectangle to the smallest world rectangle
// covering it.
func (c *Camera) ToWorldRect(r image.Rectangle) image.Rectangle {
	x0, y0 := c.toWorldF(r.Min)
	x1, y1 := c.toWorldF(r.Max)
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
}

func (c *Camera) toWorldF(s image.Point) (float64, float64) {
	return float64(s.X-c.bounds.Min.X-c.translate.X) / c.zoom,
		float64(s.Y-c.bounds.Min.Y-c.translate.Y) / c.zoom
}
