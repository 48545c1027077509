package tealayout

import (
	"image"
	"testing"
)

// selectLayout is the split the selection UI uses.
func selectLayout(w, h int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()
}

func TestLayoutRegions(t *testing.T) {
	l := selectLayout(80, 24)
	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size = %dx%d", l.TermW, l.TermH)
	}

	want := map[string]image.Rectangle{
		"toolbar": image.Rect(0, 0, 80, 1),
		"footer":  image.Rect(0, 23, 80, 24),
		"panel":   image.Rect(46, 1, 80, 23),
		"canvas":  image.Rect(0, 1, 46, 23),
	}
	for name, r := range want {
		if got := l.Get(name); got.Name != name || got.Rect != r {
			t.Errorf("%s = %+v, want %v", name, got, r)
		}
	}

	names := []string{"toolbar", "footer", "panel", "canvas"}
	area := 0
	for i, a := range names {
		area += l.Get(a).Rect.Dx() * l.Get(a).Rect.Dy()
		for _, b := range names[i+1:] {
			if l.Get(a).Rect.Overlaps(l.Get(b).Rect) {
				t.Errorf("%s overlaps %s", a, b)
			}
		}
	}
	if area != 80*24 {
		t.Errorf("regions cover %d cells, want %d", area, 80*24)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Remaining("full").Build()
	if got := l.Get("full").Rect; got != image.Rect(0, 0, 80, 24) {
		t.Errorf("full = %v", got)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantFooter image.Rectangle
	}{
		{"zero terminal", 0, 0, image.Rectangle{}},
		{"negative terminal", -4, -1, image.Rectangle{}},
		// Footer gets only the row the toolbar left free.
		{"overcommitted", 20, 2, image.Rect(0, 1, 20, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayoutBuilder(tt.w, tt.h).
				TopFixed("toolbar", 1).
				BottomFixed("footer", 3).
				Remaining("canvas").
				Build()
			if got := l.Get("footer").Rect; got != tt.wantFooter {
				t.Errorf("footer = %v, want %v", got, tt.wantFooter)
			}
			if got := l.Get("canvas").Rect; got != (image.Rectangle{}) {
				t.Errorf("canvas = %v, want empty", got)
			}
		})
	}
}

func TestLayoutMissingRegion(t *testing.T) {
	l := selectLayout(80, 24)
	if r := l.Get("missing"); r != (Region{}) {
		t.Errorf("Get(missing) = %+v", r)
	}
	if l.Contains("missing", image.Pt(0, 0)) {
		t.Error("missing region should contain nothing")
	}
}

func TestLayoutContainsAndLocal(t *testing.T) {
	l := selectLayout(80, 24)

	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 1), true},
		{image.Pt(45, 22), true},
		{image.Pt(46, 10), false},
		{image.Pt(10, 0), false},
		{image.Pt(10, 23), false},
	}
	for _, tt := range tests {
		if got := l.Contains("canvas", tt.p); got != tt.want {
			t.Errorf("Contains(canvas, %v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := l.Local("canvas", image.Pt(5, 6)); got != image.Pt(5, 5) {
		t.Errorf("Local: got %v, want (5,5)", got)
	}
}
