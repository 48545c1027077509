package rubberband

import "image"

// FreezeMemo is the rectangle position captured when the rectangle first
// dropped to or below the minimum size.
type FreezeMemo struct {
	Left, Top int
	Set       bool
}

// Synthesis is the result of one synthesizer run.
type Synthesis struct {
	// Rect is the displayed rectangle, frozen below the minimum size.
	Rect Rect
	// Region is the same sample without the freeze. Selection uses it.
	Region   Rect
	Quadrant Quadrant
	// Move is the logical movement: pointer movement minus pan.
	Move image.Point
	// Flipped is set when the quadrant differs from the previous sample.
	Flipped bool
	// FreezeStarted and FreezeLifted mark the samples where the freeze
	// memo was captured or cleared.
	FreezeStarted bool
	FreezeLifted  bool
}

// PanGate decides whether a synthesized sample may pan the viewport.
type PanGate interface {
	Allow(s Synthesis, threshold int) bool
}

// SizeGate allows panning once the rectangle is larger than the edge
// threshold on both axes, and never on a sample whose direction flipped.
type SizeGate struct{}

// Allow implements PanGate.
func (SizeGate) Allow(s Synthesis, threshold int) bool {
	return !s.Flipped && s.Rect.Width > threshold && s.Rect.Height > threshold
}

// Synthesizer turns anchor, pointer and pan translation into the selection
// rectangle. It remembers only the previous quadrant and the freeze memo.
type Synthesizer struct {
	MinSize  int
	Geometry Geometry

	prev    Quadrant
	hasPrev bool
	memo    FreezeMemo
}

// Reset forgets the previous quadrant and the freeze memo.
func (s *Synthesizer) Reset() {
	s.hasPrev = false
	s.memo = FreezeMemo{}
}

// Memo returns the current freeze memo.
func (s *Synthesizer) Memo() FreezeMemo { return s.memo }

// Region returns the rectangle for anchor, pointer and translate without
// the freeze. It leaves the previous quadrant and the memo untouched.
func (s *Synthesizer) Region(anchor, pointer, translate image.Point) Rect {
	move := pointer.Sub(anchor).Sub(translate)
	return s.region(QuadrantOf(move), anchor, move)
}

func (s *Synthesizer) region(q Quadrant, anchor, move image.Point) Rect {
	g := s.Geometry
	if g == nil {
		g = QuadrantGeometry{}
	}
	r := g.Rect(q, anchor, move)
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}

// Synthesize computes the rectangle for the current sample. translate is
// the pan applied since pointer-down.
func (s *Synthesizer) Synthesize(anchor, pointer, translate image.Point) Synthesis {
	move := pointer.Sub(anchor).Sub(translate)
	q := QuadrantOf(move)
	out := Synthesis{Quadrant: q, Move: move}
	if s.hasPrev && q != s.prev {
		out.Flipped = true
		Logger().Debug("rubberband: direction flip", "from", s.prev, "to", q)
	}
	s.prev, s.hasPrev = q, true

	// Every sample is rebuilt from anchor, pan and movement, so a flip
	// needs no special casing beyond being reported.
	r := s.region(q, anchor, move)
	out.Region = r

	if r.Width <= s.MinSize && r.Height <= s.MinSize {
		if !s.memo.Set {
			s.memo = FreezeMemo{Left: r.Left, Top: r.Top, Set: true}
			out.FreezeStarted = true
		}
		r.Left, r.Top = s.memo.Left, s.memo.Top
		r.Frozen = true
	} else if s.memo.Set {
		s.memo = FreezeMemo{}
		out.FreezeLifted = true
	}

	out.Rect = r
	return out
}
