// Package drawutil draws into a cellbuf.Buffer: Bresenham lines with
// box-drawing characters, arrowheads, rectangle outlines for the
// selection overlay, and the background grid.
package drawutil

import "image"

// Line returns the cells on the segment from a to b, both ends included,
// stepping with Bresenham's error term.
func Line(a, b image.Point) []image.Point {
	d := b.Sub(a)
	step := image.Pt(sign(d.X), sign(d.Y))
	d = image.Pt(abs(d.X), abs(d.Y))

	pts := make([]image.Point, 0, max(d.X, d.Y)+1)
	err := d.X - d.Y
	for p := a; ; {
		pts = append(pts, p)
		if p == b {
			return pts
		}
		e2 := 2 * err
		if e2 > -d.Y {
			err -= d.Y
			p.X += step.X
		}
		if e2 < d.X {
			err += d.X
			p.Y += step.Y
		}
	}
}

// SegmentRune is the box-drawing character for a step in direction d.
func SegmentRune(d image.Point) rune {
	switch {
	case d.X == 0:
		return '│'
	case d.Y == 0:
		return '─'
	case (d.X > 0) == (d.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

// ArrowRune is the arrowhead pointing along the dominant axis of d. Ties
// and the zero vector point horizontally.
func ArrowRune(d image.Point) rune {
	if abs(d.Y) > abs(d.X) {
		if d.Y > 0 {
			return '▼'
		}
		return '▲'
	}
	if d.X < 0 {
		return '◄'
	}
	return '►'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
