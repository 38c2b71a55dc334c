package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"bitty/internal/frameloop"
	"bitty/internal/raster"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string

	// mouse addresses the bottom pixel row of each cell
	lowerHalf bool

	loop  *frameloop.Loop
	frame *raster.Frame
	err   error
	cells *cellCache

	keys keyMap
	help help.Model

	// hover state, in canvas pixels
	hovering bool
	hoverX   int
	hoverY   int
}

// New wraps a running frame loop and draws its first frame.
func New(loop *frameloop.Loop) Model {
	m := Model{
		helpVisible: true,
		status:      "bitty ready",
		loop:        loop,
		cells:       newCellCache(),
		keys:        defaultKeys(),
		help:        help.New(),
	}
	if loop.Size() == 0 {
		m.status = "empty file: nothing to render"
	}
	m.tick()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Loop returns the frame loop driven by the model.
func (m Model) Loop() *frameloop.Loop { return m.loop }

// tick redraws the frame from the current pointer state.
func (m *Model) tick() {
	f, err := m.loop.Tick(context.Background())
	if err != nil {
		m.err = err
		m.status = "draw error: " + err.Error()
		return
	}
	m.err = nil
	if f != nil {
		m.frame = f
	}
}
