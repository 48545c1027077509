package selectui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/rubberband/internal/selectfilter"
	"github.com/wesen/rubberband/pkg/tealayout"
)

// openFilter opens the filter modal prefilled with the active expression.
func (m Model) openFilter() (tea.Model, tea.Cmd) {
	m.FilterOpen = true
	m.FilterErr = ""
	m.FilterInput = textinput.New()
	m.FilterInput.Prompt = "› "
	m.FilterInput.Placeholder = `node.kind == "db"`
	m.FilterInput.CharLimit = 120
	m.FilterInput.SetValue(m.canvas.Filter().Source())
	return m, m.FilterInput.Focus()
}

// handleFilterKeys processes keys while the filter modal is open.
func (m Model) handleFilterKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.FilterOpen = false
		return m, nil

	case "enter":
		f, err := selectfilter.Compile(m.FilterInput.Value(), m.log)
		if err != nil {
			m.FilterErr = err.Error()
			return m, nil
		}
		m.canvas.SetFilter(f)
		m.FilterOpen = false
		if f.Empty() {
			m.Status = "filter cleared"
		} else {
			m.Status = "filter: " + f.Source()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	return m, cmd
}

// buildFilterModalLayer renders the filter modal as a centered layer.
func buildFilterModalLayer(m Model) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().Foreground(colorAccent).Background(modalBG).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(colorDim).Background(modalBG).Italic(true)
	errStyle := lipgloss.NewStyle().Foreground(colorError).Background(modalBG)

	lines := []string{
		titleStyle.Render("SELECTION FILTER"),
		hintStyle.Render("JS expression over node.{id,label,kind,x,y}"),
		"",
		m.FilterInput.View(),
		"",
	}
	if m.FilterErr != "" {
		lines = append(lines, errStyle.Render(m.FilterErr), "")
	}
	lines = append(lines, hintStyle.Render("[enter] apply  [esc] cancel  empty clears"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Background(modalBG).
		Width(56).
		Padding(1, 2)
	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, box)
}
