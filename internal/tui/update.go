package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bitty/internal/raster"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if err := m.loop.Quit(); err != nil {
				m.status = "teardown error: " + err.Error()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Policy):
			p := m.loop.TogglePolicy()
			m.status = fmt.Sprintf("match mode: %s", p)
			m.tick()
		case key.Matches(msg, m.keys.Half):
			m.lowerHalf = !m.lowerHalf
			m.status = "pointer targets " + m.halfName() + " pixel row"
			m.shiftHalf()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		c := m.canvasLayout()
		// alt addresses the other half of the cell for a single event
		px, py, inside := c.cellToPixel(msg.X, msg.Y, m.lowerHalf != msg.Alt)
		m.hovering = inside
		m.hoverX, m.hoverY = px, py
		ev, ok := pointerEvent(msg, px, py, inside)
		if !ok {
			return m, nil
		}
		before := m.loop.Pointer()
		m.loop.Fold(ev)
		if m.loop.Pointer() != before {
			m.tick()
		}
	}
	return m, nil
}

func (m Model) halfName() string {
	if m.lowerHalf {
		return "lower"
	}
	return "upper"
}

// shiftHalf moves a held pointer to the other pixel row of its cell so the
// highlight follows the toggle without another click.
func (m *Model) shiftHalf() {
	ptr := m.loop.Pointer()
	if !ptr.Active {
		return
	}
	px, py := ptr.Pixel()
	py = py &^ 1
	if m.lowerHalf {
		py++
	}
	if py >= m.loop.Size() {
		return
	}
	m.loop.Fold(raster.PointerEvent{Kind: raster.Drag, X: float64(px), Y: float64(py), Primary: true})
	if m.hovering {
		m.hoverY = py
	}
	m.tick()
}

// pointerEvent normalizes a terminal mouse message. Presses and drags only
// count over the canvas; releases count anywhere so the highlight never
// sticks.
func pointerEvent(msg tea.MouseMsg, px, py int, inside bool) (raster.PointerEvent, bool) {
	ev := raster.PointerEvent{X: float64(px), Y: float64(py)}
	primary := msg.Button == tea.MouseButtonLeft
	switch msg.Action {
	case tea.MouseActionPress:
		if !inside || !primary {
			return ev, false
		}
		ev.Kind, ev.Primary = raster.Press, true
	case tea.MouseActionMotion:
		if primary {
			if !inside {
				return ev, false
			}
			ev.Kind, ev.Primary = raster.Drag, true
		} else {
			ev.Kind = raster.Motion
		}
	case tea.MouseActionRelease:
		// X10 encoding does not say which button was released
		ev.Kind = raster.Release
		ev.Primary = primary || msg.Button == tea.MouseButtonNone
	default:
		return ev, false
	}
	return ev, true
}
