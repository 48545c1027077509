package selectui

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/rubberband/pkg/cellbuf"
	"github.com/wesen/rubberband/pkg/drawutil"
	"github.com/wesen/rubberband/pkg/graphmodel"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/tealayout"
	"github.com/wesen/rubberband/pkg/viewport"
)

// cellbuf style keys for the background and marquee buffers.
const (
	styleBG      cellbuf.StyleKey = 0
	styleGrid    cellbuf.StyleKey = 1
	styleEdge    cellbuf.StyleKey = 2
	styleMarquee cellbuf.StyleKey = 3
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:      lipgloss.NewStyle().Background(colorBG),
	styleGrid:    lipgloss.NewStyle().Foreground(c("#1e2a36")).Background(colorBG),
	styleEdge:    lipgloss.NewStyle().Foreground(c("#3a6a8a")).Background(colorBG),
	styleMarquee: lipgloss.NewStyle().Foreground(marqueeColor).Background(colorBG).Bold(true),
}

// buildEdgeCanvasLayer renders the grid and edge arrows into one cellbuf
// layer at Z 0.
func buildEdgeCanvasLayer(g *Graph, cam *viewport.Camera, region image.Rectangle, grid image.Point) *lipgloss.Layer {
	w, h := region.Dx(), region.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(region.Min.X).Y(region.Min.Y).Z(0)
	}
	buf := cellbuf.New(w, h, styleBG)
	toBuf := func(p image.Point) image.Point { return cam.ToScreen(p).Sub(region.Min) }

	drawutil.DrawGrid(buf, cam.ToWorldRect(region), grid, toBuf, styleGrid)

	for _, edge := range g.Edges() {
		from, to := g.Node(edge.FromID), g.Node(edge.ToID)
		if from == nil || to == nil {
			continue
		}
		p1 := toBuf(drawutil.EdgeExit(graphmodel.BoundsOf(from.Data), graphmodel.CenterOf(to.Data)))
		p2 := toBuf(drawutil.EdgeExit(graphmodel.BoundsOf(to.Data), graphmodel.CenterOf(from.Data)))
		drawutil.DrawArrow(buf, p1, p2, styleEdge, styleEdge)
	}

	return lipgloss.NewLayer(buf.Render(bufStyles)).
		X(region.Min.X).Y(region.Min.Y).Z(0).ID("edge-canvas")
}

// screenRect returns a node's rectangle in terminal cells.
func screenRect(cam *viewport.Camera, d NodeData) image.Rectangle {
	origin := cam.ToScreen(d.Pos())
	return image.Rectangle{Min: origin, Max: origin.Add(cam.ScaleSize(d.Size()))}
}

// buildNodeLayers creates a layer per visible node. Preview highlights
// win over the committed selection.
func buildNodeLayers(m Model, region image.Rectangle) []*lipgloss.Layer {
	cam := m.canvas.Camera()
	var layers []*lipgloss.Layer

	for _, node := range m.canvas.Graph().Nodes() {
		d := node.Data
		r := screenRect(cam, d)
		if !r.Overlaps(region) {
			continue
		}

		colors := kindColors[d.Kind]
		bc, tc, bg := colors.border, colors.text, colorBG
		switch {
		case m.preview[node.ID]:
			bc, tc, bg = previewBorder, previewText, previewBG
		case m.canvas.IsSelected(node.ID):
			bc, tc, bg = selBorder, selText, selBG
		}

		var rendered string
		if r.Dx() < 4 || r.Dy() < 3 {
			row := strings.Repeat("▪", r.Dx())
			rows := make([]string, r.Dy())
			for i := range rows {
				rows[i] = row
			}
			rendered = lipgloss.NewStyle().Foreground(bc).Background(bg).Render(strings.Join(rows, "\n"))
		} else {
			label := d.Label
			if limit := r.Dx() - 4; len(label) > limit {
				label = label[:limit]
			}
			content := lipgloss.NewStyle().Foreground(tc).Background(bg).Bold(true).Render(label)
			rendered = lipgloss.NewStyle().
				Border(borderForKind(d.Kind)).
				BorderForeground(bc).
				Background(bg).
				Width(r.Dx() - 2).
				Height(r.Dy() - 2).
				AlignHorizontal(lipgloss.Center).
				AlignVertical(lipgloss.Center).
				Render(content)
		}

		layers = append(layers, lipgloss.NewLayer(rendered).
			X(r.Min.X).Y(r.Min.Y).Z(2).
			ID(fmt.Sprintf("node-%d", node.ID)))
	}
	return layers
}

// buildMarqueeLayers draws the marquee outline as four strips so the nodes
// underneath stay visible, plus the size badge.
func buildMarqueeLayers(r rubberband.Rect, translate image.Point, region image.Rectangle) []*lipgloss.Layer {
	w, h := region.Dx(), region.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	screen := r.Screen(translate)
	local := screen.Sub(region.Min)
	box := image.Rect(local.Min.X, local.Min.Y,
		local.Min.X+max(local.Dx(), 1), local.Min.Y+max(local.Dy(), 1))

	buf := cellbuf.New(w, h, styleBG)
	drawutil.DrawRect(buf, local, drawutil.DashedBorder, styleMarquee)

	strips := []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1),
		image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y),
		image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y),
	}
	var layers []*lipgloss.Layer
	for i, s := range strips {
		s = s.Intersect(image.Rect(0, 0, w, h))
		if s.Empty() {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(buf.Sub(s).Render(bufStyles)).
			X(region.Min.X+s.Min.X).Y(region.Min.Y+s.Min.Y).Z(4).
			ID(fmt.Sprintf("marquee-%d", i)))
	}

	badge := fmt.Sprintf(" %d×%d ", r.Width, r.Height)
	style := lipgloss.NewStyle().Foreground(colorBG).Background(marqueeColor).Bold(true)
	layers = append(layers, tealayout.BadgeLayer(badge, screen.Max.X, screen.Max.Y, 5, region, style, "marquee-size"))
	return layers
}
