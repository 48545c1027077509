// Package cellbuf is a grid of styled runes that renders to a lipgloss
// string. Drawing code writes StyleKeys; the palette is supplied at render
// time.
//
// Every rune is assumed to occupy one terminal cell.
package cellbuf

import "image"

// StyleKey names a style; the lipgloss.Style behind it is chosen at render
// time.
type StyleKey int

// Cell is one rune and its style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W×H grid of cells, addressed Cells[y][x].
type Buffer struct {
	W, H  int
	Cells [][]Cell
}

// New returns a w×h buffer of spaces in style. Negative sizes give an
// empty buffer.
func New(w, h int, style StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(style)
	return b
}

// Rect is the buffer's extent, (0,0)-(W,H).
func (b *Buffer) Rect() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// InBounds reports whether (x, y) is a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return image.Pt(x, y).In(b.Rect())
}

// Set writes one cell; writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s rightward from (x, y), one cell per rune, clipping
// at the buffer edges.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for _, ch := range s {
		b.Set(x, y, ch, style)
		x++
	}
}

// Fill blanks the whole buffer in style.
func (b *Buffer) Fill(style StyleKey) {
	b.FillRect(b.Rect(), ' ', style)
}

// FillRect writes ch into every cell of r, clipped to the buffer.
func (b *Buffer) FillRect(r image.Rectangle, ch rune, style StyleKey) {
	r = r.Intersect(b.Rect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Cells[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// Shade restyles the blank cells of r with ch, leaving drawn content
// untouched. It is used for translucent-looking selection fills.
func (b *Buffer) Shade(r image.Rectangle, ch rune, style StyleKey) {
	r = r.Intersect(b.Rect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.Cells[y][x].Ch == ' ' {
				b.Cells[y][x] = Cell{Ch: ch, Style: style}
			}
		}
	}
}

// String returns the buffer as plain text, rows joined with "\n".
func (b *Buffer) String() string {
	rows := make([]rune, 0, (b.W+1)*b.H)
	for y, row := range b.Cells {
		if y > 0 {
			rows = append(rows, '\n')
		}
		for _, c := range row {
			rows = append(rows, c.Ch)
		}
	}
	return string(rows)
}

// Sub copies the cells of r, clipped to the buffer, into a new buffer.
// The result is empty when r misses the buffer entirely.
func (b *Buffer) Sub(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Rect())
	out := &Buffer{W: r.Dx(), H: r.Dy(), Cells: make([][]Cell, r.Dy())}
	for y := range out.Cells {
		out.Cells[y] = append([]Cell(nil), b.Cells[r.Min.Y+y][r.Min.X:r.Max.X]...)
	}
	return out
}
