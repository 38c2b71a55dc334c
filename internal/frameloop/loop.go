package frameloop

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"bitty/internal/backend"
	"bitty/internal/bytestore"
	"bitty/internal/raster"
)

type State int

const (
	Running State = iota
	Terminating
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Loop owns the pointer state and drives one backend frame per tick.
type Loop struct {
	backend backend.Backend
	store   *bytestore.Store
	log     zerolog.Logger

	size    int
	pointer raster.PointerState
	policy  raster.ReferencePolicy
	state   State
	frames  uint64
}

// New sizes the canvas and brings the backend up. Failures are returned as
// *backend.SetupError.
func New(b backend.Backend, store *bytestore.Store, log zerolog.Logger) (*Loop, error) {
	s := raster.Resolution(store.Len())
	l := &Loop{
		backend: b,
		store:   store,
		log:     log,
		size:    s,
		pointer: raster.CenteredPointer(s),
		policy:  raster.SampleUnderPointer,
	}
	if err := b.CreateSurface(s); err != nil {
		return nil, asSetup("create surface", err)
	}
	if err := b.UploadBuffer(store.Words()); err != nil {
		return nil, asSetup("upload buffer", err)
	}
	log.Debug().Int("bytes", store.Len()).Int("size", s).Msg("frame loop running")
	return l, nil
}

func asSetup(stage string, err error) error {
	var se *backend.SetupError
	if errors.As(err, &se) {
		return err
	}
	return &backend.SetupError{Stage: stage, Err: err}
}

func (l *Loop) Size() int { return l.size }

func (l *Loop) State() State { return l.state }

func (l *Loop) Store() *bytestore.Store { return l.store }

func (l *Loop) Pointer() raster.PointerState { return l.pointer }

func (l *Loop) Policy() raster.ReferencePolicy { return l.policy }

func (l *Loop) Frames() uint64 { return l.frames }

// Fold applies an input event to the pointer state.
func (l *Loop) Fold(ev raster.PointerEvent) {
	l.pointer = l.pointer.Fold(ev)
}

func (l *Loop) SetPolicy(p raster.ReferencePolicy) { l.policy = p }

func (l *Loop) TogglePolicy() raster.ReferencePolicy {
	l.policy = l.policy.Next()
	return l.policy
}

// Probe returns the byte shown at canvas pixel (px, py) and its offset in the
// buffer. ok is false for pixels outside the grid or past the end of the data.
func (l *Loop) Probe(px, py int) (value byte, offset int, ok bool) {
	if px < 0 || py < 0 || px >= l.size || py >= l.size {
		return 0, 0, false
	}
	offset = raster.CellIndex(l.size, px, py)
	value, ok = l.store.Byte(offset)
	return value, offset, ok
}

// Reference is the value currently highlighted.
func (l *Loop) Reference() uint8 {
	return raster.Reference(l.store.Words(), l.size, l.pointer, l.policy)
}

// Tick draws one complete frame from the current pointer state. It returns a
// nil frame when there is nothing to render or the loop is not running.
func (l *Loop) Tick(ctx context.Context) (*raster.Frame, error) {
	if l.state != Running || l.size == 0 {
		return nil, nil
	}
	u := backend.Uniforms{Resolution: l.size, Pointer: l.pointer, Policy: l.policy}
	if err := l.backend.SetUniform(u); err != nil {
		return nil, err
	}
	f, err := l.backend.DrawFrame(ctx)
	if err != nil {
		return nil, err
	}
	l.frames++
	return f, nil
}

// Quit moves the loop to Terminating, releases the backend and settles in
// Terminated. Subsequent calls do nothing.
func (l *Loop) Quit() error {
	if l.state != Running {
		return nil
	}
	l.state = Terminating
	l.log.Debug().Uint64("frames", l.frames).Msg("frame loop terminating")
	err := l.backend.Teardown()
	l.state = Terminated
	return err
}
