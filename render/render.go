// Package render is the escape-time engine: grid construction, the two
// iteration strategies and the normalization pass that turns raw counts
// into a displayable intensity field.
package render

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	mandel "github.com/infinitewarp/mandelgrid"
)

// DefaultTileSize is the tile edge used when Options leaves TileW or
// TileH unset.
const DefaultTileSize = 64

// Options tunes the engine without changing what it computes: the result
// is identical for any worker count or tile size.
type Options struct {
	// Workers caps the number of tiles evaluated concurrently.
	// Zero means GOMAXPROCS.
	Workers int

	// TileW, TileH set the tile size used to split the grid.
	// Zero means 64.
	TileW, TileH int

	// Norm and HideMax select the normalization policy. The zero value
	// is plain linear count/maxIters.
	Norm    Norm
	HideMax bool

	// OnTile, if set, is called once per finished tile with the shared
	// counts field. Workers call it concurrently, but only after every
	// cell of the tile is final, so a progress display may read the
	// tile's cells freely. Cells outside the tile may still be mid-write.
	OnTile func(tile image.Rectangle, counts *mandel.Field[int])
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) tileSize() (w, h int) {
	w, h = o.TileW, o.TileH
	if w <= 0 {
		w = DefaultTileSize
	}
	if h <= 0 {
		h = DefaultTileSize
	}
	return w, h
}

// Counts evaluates the escape count of every grid point. The grid is
// split into tiles and tiles are evaluated concurrently; each tile writes
// only its own cells of the shared result, so no locking is needed.
func Counts(ctx context.Context, cfg mandel.Config, opts Options) (*mandel.Field[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reAxis, imAxis := planeAxes(cfg)
	counts := mandel.NewField[int](cfg.Width, cfg.Height)
	tileW, tileH := opts.tileSize()
	tiles := splitRect(counts.Bounds(), tileW, tileH)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for _, tile := range tiles {
		tile := tile
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			evalTile(tile, reAxis, imAxis, counts, cfg)
			if opts.OnTile != nil {
				opts.OnTile(tile, counts)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// evalTile gathers the tile's plane coordinates and runs the batch kernel
// for the configured strategy, scattering counts back row by row.
func evalTile(tile image.Rectangle, reAxis, imAxis []float64, counts *mandel.Field[int], cfg mandel.Config) {
	n := tile.Dx() * tile.Dy()
	cRe := make([]float64, 0, n)
	cIm := make([]float64, 0, n)
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		cRe = append(cRe, reAxis[tile.Min.X:tile.Max.X]...)
		for x := tile.Min.X; x < tile.Max.X; x++ {
			cIm = append(cIm, imAxis[y])
		}
	}

	tileCounts := make([]int, n)
	switch cfg.Strategy {
	case mandel.StrategyDecomposed:
		iterateDecomposed(cRe, cIm, tileCounts, cfg.MaxIters)
	default:
		iterateComplex(cRe, cIm, tileCounts, cfg.MaxIters)
	}

	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		row := counts.Row(y)[tile.Min.X:tile.Max.X]
		copy(row, tileCounts[(y-tile.Min.Y)*tile.Dx():])
	}
}

// Render runs the full pipeline: validate, build the grid, evaluate
// escape counts, normalize to [0,1] and verify every intensity is finite.
// It either returns a complete field or an error, never partial results.
func Render(ctx context.Context, cfg mandel.Config, opts Options) (*mandel.Field[float64], error) {
	counts, err := Counts(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	return Normalize(counts, cfg.MaxIters, opts.Norm, opts.HideMax)
}
