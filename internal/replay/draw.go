package replay

import (
	"image"

	"github.com/wesen/rubberband/pkg/cellbuf"
	"github.com/wesen/rubberband/pkg/drawutil"
)

// Draw renders the final state as plain text: node outlines in their
// current screen position and, when a rectangle is still shown, the
// dashed marquee. Cells are scaled down by cell so large containers fit a
// terminal; cell values below 1 are treated as 1.
func (r *Report) Draw(cell int) string {
	cell = max(cell, 1)
	bounds := r.canvas.Bounds()
	w := (bounds.Dx() + cell - 1) / cell
	h := (bounds.Dy() + cell - 1) / cell
	buf := cellbuf.New(w, h, 0)

	scale := func(s image.Rectangle) image.Rectangle {
		s = s.Sub(bounds.Min)
		return image.Rect(s.Min.X/cell, s.Min.Y/cell, ceilDiv(s.Max.X, cell), ceilDiv(s.Max.Y, cell))
	}

	cam := r.canvas.cam
	for _, n := range r.canvas.graph.Nodes() {
		lo := cam.ToScreen(n.Data.R.Min)
		hi := cam.ToScreen(n.Data.R.Max)
		drawutil.DrawRect(buf, scale(image.Rectangle{Min: lo, Max: hi}), drawutil.SolidBorder, 0)
	}
	if r.LastShown {
		drawutil.DrawRect(buf, scale(r.Last.Screen(r.Translate)), drawutil.DashedBorder, 0)
	}
	return buf.String()
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}
