package drawutil

import (
	"image"

	"github.com/wesen/rubberband/pkg/cellbuf"
)

// BorderRunes are the characters of a rectangle outline.
type BorderRunes struct {
	H, V           rune
	TL, TR, BL, BR rune
}

var (
	// SolidBorder is a thin box-drawing outline.
	SolidBorder = BorderRunes{H: '─', V: '│', TL: '┌', TR: '┐', BL: '└', BR: '┘'}
	// DashedBorder is the outline used for the selection marquee.
	DashedBorder = BorderRunes{H: '╌', V: '╎', TL: '┌', TR: '┐', BL: '└', BR: '┘'}
)

// DrawRect outlines r in buffer coordinates; r.Max is exclusive. A
// rectangle one cell wide or tall collapses to a line, and an empty one
// to a single corner mark at r.Min.
func DrawRect(buf *cellbuf.Buffer, r image.Rectangle, b BorderRunes, style cellbuf.StyleKey) {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	switch {
	case w <= 1 && h <= 1:
		buf.Set(r.Min.X, r.Min.Y, b.TL, style)
		return
	case h <= 1:
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.Set(x, r.Min.Y, b.H, style)
		}
		return
	case w <= 1:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			buf.Set(r.Min.X, y, b.V, style)
		}
		return
	}

	x1, y1 := r.Max.X-1, r.Max.Y-1
	for x := r.Min.X + 1; x < x1; x++ {
		buf.Set(x, r.Min.Y, b.H, style)
		buf.Set(x, y1, b.H, style)
	}
	for y := r.Min.Y + 1; y < y1; y++ {
		buf.Set(r.Min.X, y, b.V, style)
		buf.Set(x1, y, b.V, style)
	}
	buf.Set(r.Min.X, r.Min.Y, b.TL, style)
	buf.Set(x1, r.Min.Y, b.TR, style)
	buf.Set(r.Min.X, y1, b.BL, style)
	buf.Set(x1, y1, b.BR, style)
}
