package rubberband

import (
	"fmt"
	"image"
	"math"
)

// EdgeDistances are the pointer's distances to each container edge. A
// pointer outside the container has a negative distance to the edge it
// crossed.
type EdgeDistances struct {
	Left, Right, Top, Bottom int
}

// DistancesTo measures p against bounds. Right and Bottom are measured to
// Max, which is exclusive.
func DistancesTo(p image.Point, bounds image.Rectangle) EdgeDistances {
	return EdgeDistances{
		Left:   p.X - bounds.Min.X,
		Right:  bounds.Max.X - p.X,
		Top:    p.Y - bounds.Min.Y,
		Bottom: bounds.Max.Y - p.Y,
	}
}

// EdgeResolver turns edge distances into a pan direction per axis. Each
// returned component is -1, 0 or +1: +1 pans content right/down (pointer
// near the left/top edge), -1 pans it left/up.
type EdgeResolver interface {
	Resolve(d EdgeDistances, threshold int) (x, y int)
}

// CornerPolicy decides what happens when the pointer is within the band of
// two adjacent edges at once.
type CornerPolicy int

const (
	// CornerDiagonal pans both axes.
	CornerDiagonal CornerPolicy = iota
	// CornerHorizontal keeps only the x axis.
	CornerHorizontal
	// CornerVertical keeps only the y axis.
	CornerVertical
)

func (c CornerPolicy) apply(x, y int) (int, int) {
	if x == 0 || y == 0 {
		return x, y
	}
	switch c {
	case CornerHorizontal:
		return x, 0
	case CornerVertical:
		return 0, y
	}
	return x, y
}

// ClosestEdge resolves opposing edges on one axis in favour of the closer
// one; on a tie the first-checked edge (left, top) wins.
type ClosestEdge struct {
	Corner CornerPolicy
}

// Resolve implements EdgeResolver.
func (c ClosestEdge) Resolve(d EdgeDistances, threshold int) (int, int) {
	x := closest(d.Left, d.Right, threshold)
	y := closest(d.Top, d.Bottom, threshold)
	return c.Corner.apply(x, y)
}

func closest(near, far, threshold int) int {
	inNear := near < threshold
	inFar := far < threshold
	switch {
	case inNear && inFar:
		if far < near {
			return -1
		}
		return 1
	case inNear:
		return 1
	case inFar:
		return -1
	}
	return 0
}

// FirstCheckedEdge always prefers the left and top edges when both
// opposing edges are in band.
type FirstCheckedEdge struct {
	Corner CornerPolicy
}

// Resolve implements EdgeResolver.
func (f FirstCheckedEdge) Resolve(d EdgeDistances, threshold int) (int, int) {
	x := firstChecked(d.Left, d.Right, threshold)
	y := firstChecked(d.Top, d.Bottom, threshold)
	return f.Corner.apply(x, y)
}

func firstChecked(near, far, threshold int) int {
	if near < threshold {
		return 1
	}
	if far < threshold {
		return -1
	}
	return 0
}

// EdgeTrigger computes the auto-pan delta for a pointer sample.
type EdgeTrigger struct {
	Threshold int
	Speed     int
	Resolver  EdgeResolver
}

// Delta returns the pan step for pointer p inside bounds. The raw step of
// ±Speed per triggered axis is divided by zoom and rounded to the nearest
// pixel so the on-screen pan speed does not depend on zoom.
func (t EdgeTrigger) Delta(p image.Point, bounds image.Rectangle, zoom float64) image.Point {
	if t.Threshold <= 0 || t.Speed == 0 || bounds.Empty() {
		return image.Point{}
	}
	r := t.Resolver
	if r == nil {
		r = ClosestEdge{}
	}
	sx, sy := r.Resolve(DistancesTo(p, bounds), t.Threshold)
	zoom = ClampZoom(zoom)
	return image.Pt(scale(sx*t.Speed, zoom), scale(sy*t.Speed, zoom))
}

func scale(v int, zoom float64) int {
	return int(math.Round(float64(v) / zoom))
}

// ParseResolver builds an EdgeResolver from its configuration names.
// tieBreak is "closest" or "first", corner is "diagonal", "horizontal" or
// "vertical"; empty strings select the defaults.
func ParseResolver(tieBreak, corner string) (EdgeResolver, error) {
	var cp CornerPolicy
	switch corner {
	case "", "diagonal":
		cp = CornerDiagonal
	case "horizontal":
		cp = CornerHorizontal
	case "vertical":
		cp = CornerVertical
	default:
		return nil, fmt.Errorf("%w: corner policy %q", ErrInvalidConfig, corner)
	}
	switch tieBreak {
	case "", "closest":
		return ClosestEdge{Corner: cp}, nil
	case "first":
		return FirstCheckedEdge{Corner: cp}, nil
	}
	return nil, fmt.Errorf("%w: tie break %q", ErrInvalidConfig, tieBreak)
}
