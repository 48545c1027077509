package tealayout

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// block is a w×h run of ch, rows joined with "\n".
func block(ch string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	row := strings.Repeat(ch, w)
	return strings.Repeat(row+"\n", h-1) + row
}

// BarLayer renders a one-line bar across region r, padded to its width.
// The layer takes the region's name as ID.
func BarLayer(content string, r Region, style lipgloss.Style, z int) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(r.Name)
}

// FillLayer paints region r with style.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	content := block(" ", r.Rect.Dx(), r.Rect.Dy())
	if content != "" {
		content = style.Render(content)
	}
	return lipgloss.NewLayer(content).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// SeparatorLayer draws a │ rule down the left column of r.
func SeparatorLayer(r Region, style lipgloss.Style, z int) *lipgloss.Layer {
	content := block("│", 1, r.Rect.Dy())
	if content != "" {
		content = style.Render(content)
	}
	return lipgloss.NewLayer(content).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(r.Name + "-sep")
}

// ModalLayer centers content, framed by boxStyle, on a termW×termH screen
// at Z 100.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	x := max((termW-lipgloss.Width(rendered))/2, 0)
	y := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(100).ID("modal")
}

// BadgeLayer places a short styled label at (x, y), shifted left and up as
// needed so it stays inside bounds.
func BadgeLayer(text string, x, y, z int, bounds image.Rectangle, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Render(text)
	x = min(x, bounds.Max.X-lipgloss.Width(rendered))
	y = min(y, bounds.Max.Y-lipgloss.Height(rendered))
	x = max(x, bounds.Min.X)
	y = max(y, bounds.Min.Y)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(z).ID(id)
}
