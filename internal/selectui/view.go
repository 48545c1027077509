package selectui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/rubberband/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0f1a24")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#22313f")).
			Background(panelBG)
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Chrome sits above the canvas so nodes hanging over the edge are
	// covered.
	layers = append(layers,
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 10),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 10),
	)

	mode := "SELECT"
	switch {
	case m.ctrl.Active():
		mode = "MARQUEE"
		if m.ctrl.Panning() {
			mode = "MARQUEE ⇢ PAN"
		}
	case m.Dragging:
		mode = "MOVE"
	}
	tbContent := fmt.Sprintf(" rubberband  │  %s  │  zoom %.2f  │  [/] filter  [q]uit", mode, m.canvas.Zoom())
	layers = append(layers, tealayout.BarLayer(tbContent, layout.Get("toolbar"), tbStyle, 11))

	ftContent := fmt.Sprintf(" Mouse: (%d,%d)  View: %s  Sel: %d/%d  %s",
		m.MouseX, m.MouseY, fmtPt(m.canvas.Translation()),
		len(m.canvas.Selected()), m.canvas.Graph().Len(), m.Status)
	layers = append(layers, tealayout.BarLayer(ftContent, layout.Get("footer"), ftStyle, 11))

	cr := canvasRegion.Rect
	layers = append(layers, buildEdgeCanvasLayer(m.canvas.Graph(), m.canvas.Camera(), cr, m.grid))
	layers = append(layers, buildNodeLayers(m, cr)...)
	if m.ctrl.Active() && m.marquee.visible {
		layers = append(layers, buildMarqueeLayers(m.marquee.rect, m.ctrl.Pan().Translate, cr)...)
	}

	pr := panelRegion.Rect
	if pr.Dx() > 0 && pr.Dy() > 0 {
		layers = append(layers,
			tealayout.FillLayer(panelRegion, lipgloss.NewStyle().Background(panelBG), "panel-bg", 10),
			tealayout.SeparatorLayer(panelRegion, sepStyle, 11),
		)
		layers = append(layers, buildPanelLayers(m, pr.Min.X+1, pr.Min.Y, pr.Dx()-2, pr.Dy())...)
	}

	if m.FilterOpen {
		layers = append(layers, buildFilterModalLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
