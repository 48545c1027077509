package drawutil

import (
	"image"

	"github.com/wesen/rubberband/pkg/cellbuf"
)

// DrawGrid marks every world grid point inside visible with a dot. visible
// is in world units; toScreen maps a world point to buffer coordinates, so
// the grid follows pan and zoom.
func DrawGrid(buf *cellbuf.Buffer, visible image.Rectangle, spacing image.Point,
	toScreen func(image.Point) image.Point, style cellbuf.StyleKey) {
	if spacing.X <= 0 || spacing.Y <= 0 {
		return
	}
	x0 := visible.Min.X - mod(visible.Min.X, spacing.X)
	y0 := visible.Min.Y - mod(visible.Min.Y, spacing.Y)
	for wy := y0; wy < visible.Max.Y; wy += spacing.Y {
		for wx := x0; wx < visible.Max.X; wx += spacing.X {
			p := toScreen(image.Pt(wx, wy))
			buf.Set(p.X, p.Y, '·', style)
		}
	}
}

// mod is a modulus that stays non-negative for negative a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
