// Package mandelgrid computes escape-time renderings of the Mandelbrot set
// over a pixel-sampled window of the complex plane.
//
// The render subpackage holds the engine; this package holds the
// configuration, the plane-window presets and the field type the engine
// produces and display code consumes.
package mandelgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a configuration that can never render.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNumericInstability reports a non-finite intensity value after
	// normalization. The engine freezes escaped orbits, so this firing
	// means a bug in that freeze logic, not a bad input.
	ErrNumericInstability = errors.New("numeric instability")
)

// Strategy selects how the escape-time iteration does its arithmetic.
// Both strategies produce identical iteration counts; the decomposed
// variant exists to measure the cost of avoiding complex128.
type Strategy int

const (
	// StrategyComplex iterates z = z*z + c on complex128 values.
	StrategyComplex Strategy = iota

	// StrategyDecomposed carries the real and imaginary parts as
	// separate float64 values and expands the square by hand.
	StrategyDecomposed
)

func (s Strategy) String() string {
	switch s {
	case StrategyComplex:
		return "complex"
	case StrategyDecomposed:
		return "decomposed"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a CLI flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "complex", "native":
		return StrategyComplex, nil
	case "decomposed", "fake":
		return StrategyDecomposed, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
	}
}

// Rect is a window onto the complex plane, anchored at its bottom-left
// corner. ImagScale is the window height in plane units; the real extent
// is derived from the pixel aspect ratio so that pixels stay square.
type Rect struct {
	RealMin   float64
	ImagMin   float64
	ImagScale float64
}

// RealScale returns the window width in plane units for the given pixel
// dimensions.
func (r Rect) RealScale(width, height int) float64 {
	return r.ImagScale * float64(width) / float64(height)
}

// Config describes one full render. It is an immutable value: build it,
// validate it, hand it to render.Render.
type Config struct {
	Width    int
	Height   int
	MaxIters int
	Strategy Strategy
	Rect     Rect
}

// Default returns the stock full-set view: a 2000x2000 grid over
// [-1.5, 0.5] x [-1.0, 1.0] with a 50-iteration budget.
func Default() Config {
	return Config{
		Width:    2000,
		Height:   2000,
		MaxIters: 50,
		Strategy: StrategyComplex,
		Rect: Rect{
			RealMin:   -1.5,
			ImagMin:   -1.0,
			ImagScale: 2.0,
		},
	}
}

// Validate rejects configurations that cannot render. It is called by the
// engine before any computation; a config that fails here fails
// identically every time.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if c.MaxIters <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfig, c.MaxIters)
	}
	if c.Rect.ImagScale <= 0 {
		return fmt.Errorf("%w: imaginary scale must be positive, got %g", ErrInvalidConfig, c.Rect.ImagScale)
	}
	return nil
}
