package rubberband

import "image"

// Quadrant is the direction the drag is proceeding toward, relative to the
// anchor.
type Quadrant int

const (
	RightBottom Quadrant = iota
	RightTop
	LeftBottom
	LeftTop
)

var quadrantNames = map[Quadrant]string{
	RightBottom: "right-bottom",
	RightTop:    "right-top",
	LeftBottom:  "left-bottom",
	LeftTop:     "left-top",
}

func (q Quadrant) String() string {
	if s, ok := quadrantNames[q]; ok {
		return s
	}
	return "unknown"
}

// Left reports whether the drag proceeds left of the anchor.
func (q Quadrant) Left() bool { return q == LeftBottom || q == LeftTop }

// Top reports whether the drag proceeds above the anchor.
func (q Quadrant) Top() bool { return q == RightTop || q == LeftTop }

// QuadrantOf classifies a logical movement vector. Zero movement on an axis
// counts as right/bottom.
func QuadrantOf(move image.Point) Quadrant {
	switch {
	case move.X < 0 && move.Y < 0:
		return LeftTop
	case move.X < 0:
		return LeftBottom
	case move.Y < 0:
		return RightTop
	default:
		return RightBottom
	}
}

// Rect is the selection rectangle in the overlay frame: the screen frame
// as it was at pointer-down, before any auto-pan. Width and Height are
// never negative.
type Rect struct {
	Left, Top     int
	Width, Height int
	Frozen        bool
}

// Screen returns the rectangle in current screen coordinates given the
// translation applied since pointer-down.
func (r Rect) Screen(translate image.Point) image.Rectangle {
	x := r.Left + translate.X
	y := r.Top + translate.Y
	return image.Rect(x, y, x+r.Width, y+r.Height)
}

// Bounds returns the rectangle in the overlay frame.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// Geometry computes the rectangle for a quadrant. anchor is the
// pointer-down position; move is the logical movement since the anchor,
// pan included.
type Geometry interface {
	Rect(q Quadrant, anchor, move image.Point) Rect
}

// QuadrantGeometry is the default Geometry. On an axis proceeding
// right/down the anchor is the near corner and the size is the movement;
// on an axis proceeding left/up the corner is anchor+move.
//
// Because move already has the pan subtracted, a left/up corner lands on
// the pointer-down anchor adjusted by net pan, and a right/down size grows by
// the pan magnitude.
type QuadrantGeometry struct{}

// Rect implements Geometry.
func (QuadrantGeometry) Rect(q Quadrant, anchor, move image.Point) Rect {
	var r Rect
	if q.Left() {
		r.Left = anchor.X + move.X
		r.Width = -move.X
	} else {
		r.Left = anchor.X
		r.Width = move.X
	}
	if q.Top() {
		r.Top = anchor.Y + move.Y
		r.Height = -move.Y
	} else {
		r.Top = anchor.Y
		r.Height = move.Y
	}
	return r
}
