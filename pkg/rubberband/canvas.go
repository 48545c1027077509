package rubberband

import (
	"image"
	"math"
)

// Modifiers are keyboard modifiers held at pointer-down. The engine does
// not interpret them; they are handed to Canvas.SelectInRect.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Canvas is the graph-canvas collaborator. It owns rendering, hit-testing
// and the viewport transform.
//
// While a gesture is active the engine is the only caller allowed to change
// the translation; implementations must not pan on their own during a drag.
type Canvas interface {
	// Zoom returns the current zoom factor.
	Zoom() float64
	// TranslateBy shifts the viewport by (dx, dy) screen pixels.
	TranslateBy(dx, dy int)
	// Translation returns the last committed absolute translation.
	Translation() image.Point
	// Bounds returns the viewport container in screen coordinates.
	Bounds() image.Rectangle
	// SelectInRect maps a screen rectangle to canvas space and returns
	// the IDs of the nodes it intersects.
	SelectInRect(screen image.Rectangle, mods Modifiers) []int
}

// PanState is the translation applied during the current gesture plus the
// zoom snapshot taken at pointer-down.
type PanState struct {
	Translate image.Point
	Zoom      float64
}

// ClampZoom returns z, or 1 when z is zero, negative, NaN or infinite.
func ClampZoom(z float64) float64 {
	if z <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 1
	}
	return z
}

// Accessor is the engine's view of the canvas viewport.
type Accessor struct {
	canvas Canvas
	zoom   float64
}

// NewAccessor wraps c.
func NewAccessor(c Canvas) *Accessor {
	return &Accessor{canvas: c, zoom: 1}
}

// Snapshot reads the canvas zoom, clamps it and keeps it for the gesture.
func (a *Accessor) Snapshot() float64 {
	raw := a.canvas.Zoom()
	a.zoom = ClampZoom(raw)
	if a.zoom != raw {
		Logger().Warn("rubberband: invalid zoom clamped", "zoom", raw)
	}
	return a.zoom
}

// Zoom returns the last snapshot.
func (a *Accessor) Zoom() float64 { return a.zoom }

// TranslateBy forwards a pan step to the canvas.
func (a *Accessor) TranslateBy(d image.Point) {
	a.canvas.TranslateBy(d.X, d.Y)
}

// Translation returns the canvas' absolute translation.
func (a *Accessor) Translation() image.Point { return a.canvas.Translation() }

// Bounds returns the viewport container rectangle.
func (a *Accessor) Bounds() image.Rectangle { return a.canvas.Bounds() }
