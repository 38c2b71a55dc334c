package raster

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bitty/internal/bytestore"
)

// Rasterize evaluates every pixel of the S×S canvas. Rows are split into
// bands and evaluated concurrently; each band writes only its own rows.
// workers <= 0 uses GOMAXPROCS.
func Rasterize(ctx context.Context, words bytestore.WordView, s int, ptr PointerState, policy ReferencePolicy, workers int) (*Frame, error) {
	f := NewFrame(s)
	if s == 0 {
		return f, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s {
		workers = s
	}
	ref := Reference(words, s, ptr, policy)
	rowsPerWorker := (s + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for y0 := 0; y0 < s; y0 += rowsPerWorker {
		y0 := y0
		y1 := min(y0+rowsPerWorker, s)
		g.Go(func() error {
			for py := y0; py < y1; py++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := f.Pix[py*s : (py+1)*s]
				for px := range row {
					row[px] = Evaluate(Sample(words, s, px, py), ref, ptr.Active)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}
