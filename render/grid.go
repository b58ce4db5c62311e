package render

import (
	mandel "github.com/infinitewarp/mandelgrid"
)

// linspace returns n evenly spaced samples over [min, max], endpoints
// included. The last sample is pinned to max so symmetric windows stay
// exactly symmetric.
func linspace(min, max float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = min
		return xs
	}
	step := (max - min) / float64(n-1)
	for i := range xs {
		xs[i] = min + float64(i)*step
	}
	xs[n-1] = max
	return xs
}

// planeAxes returns the 1D coordinate axes of the sample grid: real
// values per column and imaginary values per row. The real extent is
// derived from the window height and the pixel aspect ratio.
func planeAxes(cfg mandel.Config) (re, im []float64) {
	r := cfg.Rect
	re = linspace(r.RealMin, r.RealMin+r.RealScale(cfg.Width, cfg.Height), cfg.Width)
	im = linspace(r.ImagMin, r.ImagMin+r.ImagScale, cfg.Height)
	return re, im
}

// PlaneGrid builds the full sampled coordinate grid: two height x width
// fields where cell (row, col) holds the real and imaginary parts of that
// pixel's plane position.
func PlaneGrid(cfg mandel.Config) (re, im *mandel.Field[float64], err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	reAxis, imAxis := planeAxes(cfg)
	re = mandel.NewField[float64](cfg.Width, cfg.Height)
	im = mandel.NewField[float64](cfg.Width, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		reRow, imRow := re.Row(y), im.Row(y)
		copy(reRow, reAxis)
		for x := range imRow {
			imRow[x] = imAxis[y]
		}
	}
	return re, im, nil
}
