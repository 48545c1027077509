package selectui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/tealayout"
)

const (
	panStep    = 3
	zoomFactor = 1.25
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.canvas.Camera().SetBounds(m.canvasRect())

	case tea.KeyPressMsg:
		if m.FilterOpen {
			return m.handleFilterKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.FilterOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.layout())

	case panFrameMsg:
		if !m.ctrl.Active() {
			return m, nil
		}
		s := m.ctrl.Frame(msg.gen)
		if s == (rubberband.Sample{}) {
			return m, nil
		}
		return m.applySample(s)
	}

	return m, nil
}

// handleKeys processes keyboard input outside the filter modal.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	cam := m.canvas.Camera()
	gesture := m.ctrl.Active() || m.Dragging

	switch key {
	case "q", "ctrl+c":
		m.ctrl.Close()
		return m, tea.Quit

	// The engine owns the translation while a marquee is open.
	case "up", "down", "left", "right":
		if gesture {
			return m, nil
		}
		switch key {
		case "up":
			cam.TranslateBy(0, panStep)
		case "down":
			cam.TranslateBy(0, -panStep)
		case "left":
			cam.TranslateBy(panStep, 0)
		case "right":
			cam.TranslateBy(-panStep, 0)
		}

	case "+", "=":
		if !gesture {
			cam.SetZoom(cam.Zoom() * zoomFactor)
		}
	case "-":
		if !gesture {
			cam.SetZoom(cam.Zoom() / zoomFactor)
		}
	case "0":
		if !gesture {
			cam.Reset()
		}

	case "a":
		m.canvas.SelectAll()
		m.Status = fmt.Sprintf("selected %d", len(m.canvas.Selected()))
	case "x", "delete":
		if !gesture {
			n := m.canvas.DeleteSelected()
			m.Status = fmt.Sprintf("deleted %d", n)
		}
	case "/":
		if !gesture {
			return m.openFilter()
		}

	case "esc", "escape":
		if m.ctrl.Active() {
			m.ctrl.Close()
			m.marquee.visible = false
			m.preview = nil
			m.Status = "selection cancelled"
			return m, nil
		}
		m.canvas.ClearSelection()
		m.commit = nil
		m.Status = ""
	}

	return m, nil
}

// layout computes the screen regions; View and the mouse handler share it.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

// canvasRect is the canvas region in terminal cells.
func (m Model) canvasRect() image.Rectangle {
	return m.layout().Get("canvas").Rect
}

func commitStatus(c rubberband.Commit) string {
	if !c.Moved {
		return fmt.Sprintf("click: %d selected", len(c.Selected))
	}
	return fmt.Sprintf("%d×%d → %d selected", c.Screen.Dx(), c.Screen.Dy(), len(c.Selected))
}
