package backend

import (
	"context"
	"fmt"

	"bitty/internal/bytestore"
	"bitty/internal/raster"
)

// Uniforms are the per-frame values pushed to the pixel stage.
type Uniforms struct {
	Resolution int
	Pointer    raster.PointerState
	Policy     raster.ReferencePolicy
}

// Backend is the drawing capability the frame loop depends on. Calls are
// made from a single goroutine.
type Backend interface {
	CreateSurface(size int) error
	UploadBuffer(words bytestore.WordView) error
	SetUniform(u Uniforms) error
	DrawFrame(ctx context.Context) (*raster.Frame, error)
	Teardown() error
}

// SetupError is a failure to bring up the drawing environment. It is not
// retried.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("render error: failed to %s: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }
