package raster

import "math"

// PointerState is the last primary-button interaction in canvas space.
// Active is true exactly while the primary button is held over the canvas.
type PointerState struct {
	X, Y     float64
	Active   bool
	Reserved float64
}

// CenteredPointer is the initial state: canvas centre, inactive.
func CenteredPointer(s int) PointerState {
	return PointerState{X: 0.5 * float64(s), Y: 0.5 * float64(s)}
}

// Pixel returns the canvas pixel under the pointer.
func (p PointerState) Pixel() (px, py int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// EventKind is what happened to the pointer.
type EventKind int

const (
	Press EventKind = iota
	Drag
	Release
	Motion
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Drag:
		return "drag"
	case Release:
		return "release"
	case Motion:
		return "motion"
	}
	return "unknown"
}

// PointerEvent is a normalized input event. X and Y are canvas coordinates,
// Y measured from the top. Primary reports whether the primary button is the
// one pressed, released, or held during the move.
type PointerEvent struct {
	Kind    EventKind
	X, Y    float64
	Primary bool
}

// Fold applies ev and returns the updated state.
func (p PointerState) Fold(ev PointerEvent) PointerState {
	switch ev.Kind {
	case Press:
		if ev.Primary {
			p.X, p.Y, p.Active = ev.X, ev.Y, true
		}
	case Drag, Motion:
		if ev.Primary {
			p.X, p.Y, p.Active = ev.X, ev.Y, true
		} else {
			p.Active = false
		}
	case Release:
		if ev.Primary {
			p.Active = false
		}
	}
	return p
}
