package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bitty/internal/raster"
)

// canvas is the visible part of the surface. Each terminal cell holds two
// pixel rows: the upper half block takes the top pixel as foreground and the
// bottom pixel as background.
type canvas struct {
	originX, originY int
	cols, rows       int
	size             int
}

// canvasLayout computes the canvas viewport for the current window. It must
// match what View draws.
func (m Model) canvasLayout() canvas {
	s := m.loop.Size()
	contentHeight := max(1, m.height-headerHeight-footerHeight)
	return canvas{
		originX: 0,
		originY: headerHeight,
		cols:    min(s, max(0, m.width)),
		rows:    min((s+1)/2, contentHeight),
		size:    s,
	}
}

// cellToPixel converts a terminal cell to the canvas pixel drawn in its top
// half, or its bottom half when lower is set. ok is false outside the visible
// canvas.
func (c canvas) cellToPixel(x, y int, lower bool) (px, py int, ok bool) {
	cx, cy := x-c.originX, y-c.originY
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return 0, 0, false
	}
	px, py = cx, cy*2
	if lower {
		py++
	}
	if px >= c.size || py >= c.size {
		return 0, 0, false
	}
	return px, py, true
}

type cellKey struct {
	top, bottom uint8
	half        bool
}

// cellCache memoizes rendered half block cells; a frame only ever uses a few
// of the 65536 gray pairs.
type cellCache struct {
	cells map[cellKey]string
}

func newCellCache() *cellCache {
	return &cellCache{cells: make(map[cellKey]string)}
}

func grayColor(v uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
}

func (c *cellCache) get(k cellKey) string {
	if s, ok := c.cells[k]; ok {
		return s
	}
	st := lipgloss.NewStyle().Foreground(grayColor(k.top))
	if !k.half {
		st = st.Background(grayColor(k.bottom))
	}
	s := st.Render("▀")
	c.cells[k] = s
	return s
}

// renderCanvas draws the visible rows of the frame.
func (m Model) renderCanvas(c canvas, f *raster.Frame) string {
	if f == nil || c.cols == 0 || c.rows == 0 {
		return ""
	}
	lines := make([]string, c.rows)
	var b strings.Builder
	for r := 0; r < c.rows; r++ {
		b.Reset()
		top := r * 2
		for x := 0; x < c.cols; x++ {
			k := cellKey{top: f.Gray(x, top), half: top+1 >= f.Size}
			if !k.half {
				k.bottom = f.Gray(x, top+1)
			}
			b.WriteString(m.cells.get(k))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
