// Package tealayout splits the terminal into named regions and builds the
// chrome layers (toolbar, footer, panel backgrounds, modals, badges) that
// sit on them in a lipgloss v2 compositor.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout is the set of regions computed for one terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the named region, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Contains reports whether terminal point p lies inside the named region.
func (l Layout) Contains(name string, p image.Point) bool {
	return p.In(l.Regions[name].Rect)
}

// Local converts terminal point p into coordinates relative to the named
// region's top-left corner.
func (l Layout) Local(name string, p image.Point) image.Point {
	return p.Sub(l.Regions[name].Rect.Min)
}

// LayoutBuilder carves fixed strips off the sides of the terminal in call
// order. Each strip spans whatever is still free at the time, so a right
// panel reserved after the toolbar sits below it.
type LayoutBuilder struct {
	termW, termH int
	free         image.Rectangle
	regions      []Region
}

// NewLayoutBuilder starts with the whole termW×termH area free.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{
		termW: termW,
		termH: termH,
		free:  image.Rectangle{Max: image.Pt(max(termW, 0), max(termH, 0))},
	}
}

// TopFixed reserves n rows at the top of the free area.
func (b *LayoutBuilder) TopFixed(name string, n int) *LayoutBuilder {
	n = clamp(n, b.free.Dy())
	r := b.free
	r.Max.Y = r.Min.Y + n
	b.free.Min.Y += n
	return b.add(name, r)
}

// BottomFixed reserves n rows at the bottom of the free area.
func (b *LayoutBuilder) BottomFixed(name string, n int) *LayoutBuilder {
	n = clamp(n, b.free.Dy())
	r := b.free
	r.Min.Y = r.Max.Y - n
	b.free.Max.Y -= n
	return b.add(name, r)
}

// RightFixed reserves n columns at the right of the free area.
func (b *LayoutBuilder) RightFixed(name string, n int) *LayoutBuilder {
	n = clamp(n, b.free.Dx())
	r := b.free
	r.Min.X = r.Max.X - n
	b.free.Max.X -= n
	return b.add(name, r)
}

// Remaining assigns the whole free area to name.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	return b.add(name, b.free)
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) *LayoutBuilder {
	if r.Empty() {
		r = image.Rectangle{}
	}
	b.regions = append(b.regions, Region{Name: name, Rect: r})
	return b
}

// Build returns the computed Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		l.Regions[r.Name] = r
	}
	return l
}

func clamp(n, limit int) int {
	return min(max(n, 0), limit)
}
