package selectui

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

const panelWidth = 34

var panelBG = c("#111821")

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#c0d0e0")).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#d7af5f")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width with the panel background.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// section renders a titled block of exactly height lines.
func section(title string, body []string, x, y, width, height int, id string) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	lines = append(lines, body...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(11).ID(id)
}

func kv(k string, v any) string {
	return panelKeyStyle.Render(fmt.Sprintf("  %-10s", k)) + panelTextStyle.Render(fmt.Sprint(v))
}

// gestureLines describes the controller state.
func gestureLines(m Model) []string {
	st := m.ctrl.Gesture()
	pan := m.ctrl.Pan()
	if !st.Active {
		lines := []string{
			kv("state", "idle"),
			kv("translate", fmtPt(m.canvas.Translation())),
			kv("zoom", fmt.Sprintf("%.2f", m.canvas.Zoom())),
		}
		if m.commit != nil {
			lines = append(lines,
				kv("last", fmtRect(m.commit.Screen.Min.X, m.commit.Screen.Min.Y, m.commit.Screen.Dx(), m.commit.Screen.Dy())),
				kv("hits", len(m.commit.Selected)))
		}
		return lines
	}

	lines := []string{
		kv("state", "dragging"),
		kv("anchor", fmtPt(st.Anchor)),
		kv("pointer", fmtPt(st.LastPointer)),
		kv("translate", fmtPt(pan.Translate)),
		kv("zoom", fmt.Sprintf("%.2f", pan.Zoom)),
	}
	if syn, ok := m.ctrl.Last(); ok {
		r := syn.Rect
		lines = append(lines,
			kv("quadrant", syn.Quadrant),
			kv("rect", fmtRect(r.Left, r.Top, r.Width, r.Height)),
			kv("frozen", r.Frozen),
			kv("flipped", syn.Flipped),
		)
	}
	loop := "off"
	if m.ctrl.Panning() {
		loop = fmt.Sprintf("gen %d", m.ctrl.LoopGen())
	}
	lines = append(lines, kv("pan loop", loop))
	if m.last.Delta != (image.Point{}) {
		lines = append(lines, kv("delta", fmtPt(m.last.Delta)))
	}
	return lines
}

// selectionLines lists the selected nodes in id order.
func selectionLines(m Model, room int) []string {
	ids := m.canvas.Selected()
	if len(ids) == 0 {
		return []string{panelDimStyle.Render("  (none)")}
	}
	lines := []string{panelDimStyle.Render(fmt.Sprintf("  %d selected", len(ids)))}
	shown := ids
	if room > 1 && len(shown) > room-1 {
		shown = shown[:room-1]
	}
	for _, id := range shown {
		n := m.canvas.Graph().Node(id)
		if n == nil {
			continue
		}
		lines = append(lines, panelTextStyle.Render(fmt.Sprintf("  #%-3d %s", id, n.Data.Label)))
	}
	return lines
}

var helpLines = []string{
	"  drag blank = marquee select",
	"  shift+drag = add to selection",
	"  drag node = move",
	"  ←↑↓→ pan  +/- zoom  0 reset",
	"  a all  x delete  / filter",
	"  esc cancel/clear  q quit",
}

// buildPanelLayers lays out the gesture, selection and help sections.
func buildPanelLayers(m Model, x, y, width, height int) []*lipgloss.Layer {
	gestureH := 13
	helpH := len(helpLines) + 2
	selH := max(height-gestureH-helpH, 3)

	help := make([]string, len(helpLines))
	for i, l := range helpLines {
		help[i] = panelTextStyle.Render(l)
	}
	filter := "SELECTION"
	if f := m.canvas.Filter(); !f.Empty() {
		filter = "SELECTION (filtered)"
	}

	return []*lipgloss.Layer{
		section("GESTURE", gestureLines(m), x, y, width, gestureH, "panel-gesture"),
		section(filter, selectionLines(m, selH-2), x, y+gestureH, width, selH, "panel-selection"),
		section("HELP", help, x, y+gestureH+selH, width, helpH, "panel-help"),
	}
}

func fmtPt(p image.Point) string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

func fmtRect(x, y, w, h int) string {
	return fmt.Sprintf("%d,%d %d×%d", x, y, w, h)
}
