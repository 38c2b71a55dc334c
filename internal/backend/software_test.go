package backend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitty/internal/backend"
	"bitty/internal/bytestore"
	"bitty/internal/raster"
)

func TestSoftwareDraw(t *testing.T) {
	b := backend.NewSoftware(2)
	words := bytestore.NewWordView([]byte{0x11, 0x22, 0x33, 0x44})

	require.NoError(t, b.CreateSurface(2))
	assert.Equal(t, 2, b.Size())
	require.NoError(t, b.UploadBuffer(words))

	f, err := b.DrawFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(0x33), f.Gray(0, 0))

	ptr := raster.PointerState{X: 0, Y: 0, Active: true}
	require.NoError(t, b.SetUniform(backend.Uniforms{Resolution: 2, Pointer: ptr}))
	f, err = b.DrawFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 0}, f.Pix)
}

func TestSoftwareOrder(t *testing.T) {
	b := backend.NewSoftware(0)

	err := b.UploadBuffer(bytestore.NewWordView(nil))
	var se *backend.SetupError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "upload buffer", se.Stage)
	assert.ErrorIs(t, err, backend.ErrNoSurface)

	_, err = b.DrawFrame(context.Background())
	assert.ErrorIs(t, err, backend.ErrNoSurface)

	require.NoError(t, b.CreateSurface(1))
	_, err = b.DrawFrame(context.Background())
	assert.ErrorIs(t, err, backend.ErrNoBuffer)

	err = b.CreateSurface(-1)
	assert.ErrorIs(t, err, backend.ErrSurfaceSize)
	assert.Contains(t, err.Error(), "render error: failed to create surface")
}

func TestSoftwareTeardown(t *testing.T) {
	b := backend.NewSoftware(0)
	require.NoError(t, b.CreateSurface(1))
	require.NoError(t, b.UploadBuffer(bytestore.NewWordView([]byte{1})))

	require.NoError(t, b.Teardown())
	require.NoError(t, b.Teardown())

	_, err := b.DrawFrame(context.Background())
	assert.ErrorIs(t, err, backend.ErrTornDown)
	assert.ErrorIs(t, b.SetUniform(backend.Uniforms{}), backend.ErrTornDown)
	assert.ErrorIs(t, b.CreateSurface(1), backend.ErrTornDown)
}
