package selectui

import (
	"image"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/tealayout"
)

// modifiers translates the terminal's modifier keys.
func modifiers(mod tea.KeyMod) rubberband.Modifiers {
	var mods rubberband.Modifiers
	if mod&tea.ModShift != 0 {
		mods |= rubberband.ModShift
	}
	if mod&tea.ModCtrl != 0 {
		mods |= rubberband.ModCtrl
	}
	if mod&tea.ModAlt != 0 {
		mods |= rubberband.ModAlt
	}
	return mods
}

// handleMouse routes mouse events: presses on a node select and drag it,
// presses on blank canvas start a marquee gesture.
func handleMouse(m Model, msg tea.MouseMsg, l tealayout.Layout) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	p := image.Pt(mouse.X, mouse.Y)
	local := l.Local("canvas", p)
	m.MouseX, m.MouseY = local.X, local.Y
	inside := l.Contains("canvas", p)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !inside {
			return m, nil
		}
		return handleLeftClick(m, p, modifiers(mouse.Mod)), nil

	case tea.MouseMotionMsg:
		if m.Dragging {
			w := m.canvas.Camera().ToWorld(p)
			m.canvas.Graph().MoveNode(m.DragNodeID, w.Sub(m.DragOff), SetPos)
			return m, nil
		}
		if !m.ctrl.Active() {
			return m, nil
		}
		if !inside {
			return m.finishGesture(m.ctrl.PointerLeave()), nil
		}
		return m.applySample(m.ctrl.PointerMove(p))

	case tea.MouseReleaseMsg:
		if m.Dragging {
			m.Dragging = false
			m.DragNodeID = -1
			return m, nil
		}
		if m.ctrl.Active() {
			return m.finishGesture(m.ctrl.PointerUp()), nil
		}
	}
	return m, nil
}

func handleLeftClick(m Model, p image.Point, mods rubberband.Modifiers) Model {
	id := m.canvas.NodeAt(p)
	if id < 0 {
		m.ctrl.PointerDown(p, mods)
		m.preview = nil
		m.commit = nil
		m.last = rubberband.Sample{}
		return m
	}

	if mods.Has(rubberband.ModShift) {
		m.canvas.Toggle(id)
		return m
	}
	if !m.canvas.IsSelected(id) {
		m.canvas.Select(id)
	}
	node := m.canvas.Graph().Node(id)
	m.Dragging = true
	m.DragNodeID = id
	m.DragOff = m.canvas.Camera().ToWorld(p).Sub(node.Data.Pos())
	return m
}

// applySample records a sample, refreshes the preview highlight and
// schedules the next pan frame when asked to.
func (m Model) applySample(s rubberband.Sample) (Model, tea.Cmd) {
	m.last = s
	m.preview = make(map[int]bool)
	for _, id := range m.canvas.Hits(s.Region) {
		m.preview[id] = true
	}
	if s.Frame == 0 {
		return m, nil
	}
	gen := s.Frame
	return m, tea.Tick(m.frame, func(time.Time) tea.Msg {
		return panFrameMsg{gen: gen}
	})
}

func (m Model) finishGesture(c rubberband.Commit) Model {
	m.commit = &c
	m.preview = nil
	m.marquee.visible = false
	m.Status = commitStatus(c)
	return m
}
