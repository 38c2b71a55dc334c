package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	contentHeight := max(1, m.height-headerHeight-footerHeight)

	header := titleStyle.Render(" bitty ─ byte value viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	c := m.canvasLayout()
	body := lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).Render(m.renderCanvas(c, m.frame))

	status := dimStyle.Render(" " + m.status + " ")
	if m.err != nil {
		status = errStyle.Render(" " + m.status + " ")
	}
	info := m.renderInfo()
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, info)
	line2 := ""
	if m.helpVisible {
		line2 = dimStyle.Render(" ") + m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, line1, line2))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderInfo describes the buffer, the pointer and the byte under the mouse.
func (m Model) renderInfo() string {
	store := m.loop.Store()
	name := filepath.Base(store.Path())
	if store.Path() == "" {
		name = "<memory>"
	}
	out := dimStyle.Render(fmt.Sprintf(" %s  %d bytes  %d×%d ", name, store.Len(), m.loop.Size(), m.loop.Size()))
	ptr := m.loop.Pointer()
	if ptr.Active {
		lit := 0
		if m.frame != nil {
			lit = m.frame.Matches()
		}
		px, py := ptr.Pixel()
		out += hotStyle.Render(fmt.Sprintf(" match 0x%02x at (%d,%d)  %d px  [%s] ", m.loop.Reference(), px, py, lit, m.loop.Policy()))
	}
	if m.hovering {
		if v, off, ok := m.loop.Probe(m.hoverX, m.hoverY); ok {
			out += dimStyle.Render(fmt.Sprintf(" @0x%06x = 0x%02x ", off, v))
		} else {
			out += dimStyle.Render(" past end ")
		}
	}
	return out
}
