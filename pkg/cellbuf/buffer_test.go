package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBG StyleKey = iota
	testRed
	testBlue
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

func TestNewIsBlank(t *testing.T) {
	b := New(4, 2, testBlue)
	if b.W != 4 || b.H != 2 || len(b.Cells) != 2 || len(b.Cells[1]) != 4 {
		t.Fatalf("New(4,2) shape = %dx%d rows=%d", b.W, b.H, len(b.Cells))
	}
	if got := b.String(); got != "    \n    " {
		t.Errorf("String = %q", got)
	}
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Style != testBlue {
				t.Fatalf("cell style = %d, want testBlue", c.Style)
			}
		}
	}
}

func TestNewDegenerate(t *testing.T) {
	for _, sz := range []image.Point{{0, 0}, {-5, -3}, {3, 0}} {
		b := New(sz.X, sz.Y, testBG)
		if !b.Rect().Empty() {
			t.Errorf("New(%v) rect = %v, want empty", sz, b.Rect())
		}
		if got := b.Render(testStyles()); got != "" {
			t.Errorf("New(%v) renders %q", sz, got)
		}
	}
}

func TestSetClipsToBounds(t *testing.T) {
	b := New(3, 2, testBG)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}, {1, 1}} {
		b.Set(p.X, p.Y, 'X', testRed)
	}
	if got := b.String(); got != "   \n X " {
		t.Errorf("String = %q", got)
	}
	if c := b.Cells[1][1]; c.Style != testRed {
		t.Errorf("set cell style = %d", c.Style)
	}
	if !b.InBounds(2, 1) || b.InBounds(3, 1) || b.InBounds(0, -1) {
		t.Error("InBounds disagrees with the buffer extent")
	}
}

func TestSetString(t *testing.T) {
	tests := []struct {
		name string
		x    int
		s    string
		want string
	}{
		{"inside", 1, "Hi", " Hi  "},
		{"clipped right", 3, "Hello", "   He"},
		{"clipped left", -2, "Hello", "llo  "},
		{"multibyte", 1, "┌─┐", " ┌─┐ "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(5, 1, testBG)
			b.SetString(tt.x, 0, tt.s, testRed)
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	b := New(3, 2, testBG)
	b.SetString(0, 0, "abc", testRed)
	b.Fill(testBlue)
	if got := b.String(); got != "   \n   " {
		t.Errorf("Fill left content: %q", got)
	}
	if b.Cells[0][1].Style != testBlue {
		t.Error("Fill did not restyle")
	}
}

func TestFillRectClips(t *testing.T) {
	b := New(5, 3, testBG)
	b.FillRect(image.Rect(3, 1, 10, 10), '#', testRed)
	if got := b.String(); got != "     \n   ##\n   ##" {
		t.Errorf("FillRect: got %q", got)
	}
}

func TestShadeKeepsContent(t *testing.T) {
	b := New(6, 1, testBG)
	b.SetString(2, 0, "ab", testRed)
	b.Shade(image.Rect(0, 0, 6, 1), '.', testBlue)
	if got := b.String(); got != "..ab.." {
		t.Errorf("Shade: got %q", got)
	}
	if b.Cells[0][2].Style != testRed {
		t.Error("Shade restyled drawn content")
	}
}

func TestSub(t *testing.T) {
	b := New(4, 3, testBG)
	b.SetString(0, 1, "abcd", testRed)
	sub := b.Sub(image.Rect(2, 1, 9, 3))
	if sub.W != 2 || sub.H != 2 {
		t.Fatalf("Sub size: got %dx%d, want 2x2", sub.W, sub.H)
	}
	if got := sub.String(); got != "cd\n  " {
		t.Errorf("Sub content: got %q", got)
	}
	sub.Set(0, 0, 'z', testBlue)
	if b.Cells[1][2].Ch != 'c' {
		t.Error("Sub shares cells with its parent")
	}
	if empty := b.Sub(image.Rect(10, 10, 12, 12)); empty.W != 0 || empty.H != 0 {
		t.Errorf("disjoint Sub: got %dx%d", empty.W, empty.H)
	}
}

func TestRenderKeepsText(t *testing.T) {
	b := New(10, 3, testBG)
	b.SetString(2, 1, "Hi", testRed)
	b.SetString(0, 2, "plain", StyleKey(99))
	out := b.Render(testStyles())

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Render gave %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "Hi") {
		t.Errorf("row 1 lost its text: %q", lines[1])
	}
	// Unknown keys render without escapes.
	if !strings.HasPrefix(lines[2], "plain") {
		t.Errorf("row 2 = %q, want unstyled prefix", lines[2])
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	striped := New(50, 1, testBG)
	for x := range 50 {
		striped.Set(x, 0, '.', testRed+StyleKey(x%2))
	}
	if u, s := len(uniform), len(striped.Render(styles)); u >= s {
		t.Errorf("uniform row (%d bytes) should render shorter than striped (%d bytes)", u, s)
	}
}

// BenchmarkRenderCanvas approximates an edge-canvas frame: background,
// a dot grid and one diagonal.
func BenchmarkRenderCanvas(b *testing.B) {
	styles := testStyles()
	buf := New(150, 40, testBG)
	for y := 0; y < 40; y += 3 {
		for x := 0; x < 150; x += 5 {
			buf.Set(x, y, '·', testRed)
		}
	}
	for i := range 40 {
		buf.Set(i, i, '\\', testBlue)
	}

	b.ResetTimer()
	for range b.N {
		_ = buf.Render(styles)
	}
}
