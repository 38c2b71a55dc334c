package backend

import (
	"context"
	"errors"
	"fmt"

	"bitty/internal/bytestore"
	"bitty/internal/raster"
)

var (
	ErrNoSurface   = errors.New("no surface")
	ErrNoBuffer    = errors.New("no buffer bound")
	ErrTornDown    = errors.New("backend torn down")
	ErrSurfaceSize = errors.New("invalid surface size")
)

var _ Backend = (*Software)(nil)

// Software runs the pixel stage on the CPU, spreading rows over Workers
// goroutines (0 means GOMAXPROCS).
type Software struct {
	Workers int

	size     int
	surface  bool
	words    *bytestore.WordView
	uniforms Uniforms
	torn     bool
}

// NewSoftware returns a backend with no surface yet.
func NewSoftware(workers int) *Software {
	return &Software{Workers: workers}
}

func (b *Software) CreateSurface(size int) error {
	if b.torn {
		return &SetupError{Stage: "create surface", Err: ErrTornDown}
	}
	if size < 0 {
		return &SetupError{Stage: "create surface", Err: fmt.Errorf("%w: %d", ErrSurfaceSize, size)}
	}
	b.size = size
	b.surface = true
	b.uniforms.Resolution = size
	return nil
}

func (b *Software) UploadBuffer(words bytestore.WordView) error {
	if b.torn {
		return &SetupError{Stage: "upload buffer", Err: ErrTornDown}
	}
	if !b.surface {
		return &SetupError{Stage: "upload buffer", Err: ErrNoSurface}
	}
	b.words = &words
	return nil
}

func (b *Software) SetUniform(u Uniforms) error {
	if b.torn {
		return ErrTornDown
	}
	b.uniforms = u
	return nil
}

func (b *Software) DrawFrame(ctx context.Context) (*raster.Frame, error) {
	switch {
	case b.torn:
		return nil, ErrTornDown
	case !b.surface:
		return nil, ErrNoSurface
	case b.words == nil:
		return nil, ErrNoBuffer
	}
	return raster.Rasterize(ctx, *b.words, b.uniforms.Resolution, b.uniforms.Pointer, b.uniforms.Policy, b.Workers)
}

// Teardown releases the bound buffer and surface. Calling it again is a no-op.
func (b *Software) Teardown() error {
	b.torn = true
	b.surface = false
	b.words = nil
	return nil
}

// Size is the side of the current surface.
func (b *Software) Size() int { return b.size }
