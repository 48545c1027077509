package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render returns the buffer as styled text, rows joined with "\n". Runs of
// cells sharing a StyleKey go through one Style.Render call; keys missing
// from styles render unstyled. An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		flush := func(key StyleKey) {
			if s, ok := styles[key]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		key := row[0].Style
		for _, c := range row {
			if c.Style != key {
				flush(key)
				key = c.Style
			}
			run = append(run, c.Ch)
		}
		flush(key)
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
