// Package graphmodel is a generic graph of positioned, sized nodes in world
// coordinates. It answers the point and rectangle queries a selection
// canvas needs: which node is under a cell, which nodes a marquee covers.
package graphmodel

import "image"

// Spatial is anything with a world position and size.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// BoundsOf returns the rectangle s occupies.
func BoundsOf(s Spatial) image.Rectangle {
	p := s.Pos()
	return image.Rectangle{Min: p, Max: p.Add(s.Size())}
}

// CenterOf returns the center of s, rounded toward its top-left.
func CenterOf(s Spatial) image.Point {
	return s.Pos().Add(s.Size().Div(2))
}
