package drawutil

import (
	"image"

	"github.com/wesen/rubberband/pkg/cellbuf"
)

// heading is the direction of the line at pts[i]: toward the next point,
// or from the previous one at the tail.
func heading(pts []image.Point, i int) image.Point {
	switch {
	case i+1 < len(pts):
		return pts[i+1].Sub(pts[i])
	case i > 0:
		return pts[i].Sub(pts[i-1])
	}
	return image.Point{}
}

// DrawLine draws the segment a-b in buffer coordinates.
func DrawLine(buf *cellbuf.Buffer, a, b image.Point, style cellbuf.StyleKey) {
	pts := Line(a, b)
	for i, p := range pts {
		buf.Set(p.X, p.Y, SegmentRune(heading(pts, i)), style)
	}
}

// DrawArrow draws the segment a-b with an arrowhead on b. The body and the
// head take separate styles.
func DrawArrow(buf *cellbuf.Buffer, a, b image.Point, body, head cellbuf.StyleKey) {
	pts := Line(a, b)
	n := len(pts) - 1
	for i, p := range pts[:n] {
		buf.Set(p.X, p.Y, SegmentRune(heading(pts, i)), body)
	}
	buf.Set(b.X, b.Y, ArrowRune(heading(pts, n)), head)
}
