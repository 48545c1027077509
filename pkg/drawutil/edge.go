package drawutil

import "image"

// EdgeExit returns the border cell where a ray from the centre of r toward
// target leaves r. Sides are compared in units of r's half-size, so wide
// nodes prefer their top and bottom for steep targets. A target at the
// centre, or an r smaller than 2×2, yields the centre.
func EdgeExit(r image.Rectangle, target image.Point) image.Point {
	c := r.Min.Add(r.Max).Div(2)
	half := r.Size().Div(2)
	d := target.Sub(c)
	if d == (image.Point{}) || half == (image.Point{}) {
		return c
	}

	// |d.X|/half.X against |d.Y|/half.Y, cross-multiplied.
	if abs(d.X)*half.Y > abs(d.Y)*half.X {
		if d.X > 0 {
			return image.Pt(r.Max.X-1, c.Y)
		}
		return image.Pt(r.Min.X, c.Y)
	}
	if d.Y > 0 {
		return image.Pt(c.X, r.Max.Y-1)
	}
	return image.Pt(c.X, r.Min.Y)
}
