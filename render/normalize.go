package render

import (
	"fmt"
	"math"

	mandel "github.com/infinitewarp/mandelgrid"
)

// Norm selects how raw escape counts map to display intensities.
type Norm int

const (
	// NormLinear maps count/maxIters straight into [0,1]. Intensity is an
	// affine, non-decreasing function of the count.
	NormLinear Norm = iota

	// NormStretch stretches counts to fill the full intensity range:
	// the smallest count maps just above zero and in-set cells (those
	// that hit the budget) clamp to one step past the largest escaping
	// count, so close-up views keep contrast even when every count sits
	// in a narrow band.
	NormStretch
)

func (n Norm) String() string {
	switch n {
	case NormLinear:
		return "linear"
	case NormStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// ParseNorm maps a CLI flag value to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "linear":
		return NormLinear, nil
	case "stretch":
		return NormStretch, nil
	default:
		return 0, fmt.Errorf("%w: unknown normalization %q", mandel.ErrInvalidConfig, s)
	}
}

// Normalize maps raw escape counts to intensities in [0,1]. With
// NormStretch, hideMax drops in-set cells to zero instead of clamping
// them to the top of the range; hideMax is ignored for NormLinear.
func Normalize(counts *mandel.Field[int], maxIters int, norm Norm, hideMax bool) (*mandel.Field[float64], error) {
	if maxIters <= 0 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d", mandel.ErrInvalidConfig, maxIters)
	}
	var out *mandel.Field[float64]
	switch norm {
	case NormLinear:
		out = linear(counts, maxIters)
	case NormStretch:
		out = stretch(counts, hideMax)
	default:
		return nil, fmt.Errorf("%w: unknown normalization %v", mandel.ErrInvalidConfig, norm)
	}
	if err := checkFinite(out); err != nil {
		return nil, err
	}
	return out, nil
}

func linear(counts *mandel.Field[int], maxIters int) *mandel.Field[float64] {
	out := mandel.NewField[float64](counts.W, counts.H)
	for i, c := range counts.Pix {
		out.Pix[i] = float64(c) / float64(maxIters)
	}
	return out
}

func stretch(counts *mandel.Field[int], hideMax bool) *mandel.Field[float64] {
	min, max := counts.Pix[0], counts.Pix[0]
	for _, c := range counts.Pix {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}

	// Shift so the smallest count lands at 1, then deal with the cells
	// that hit the budget: they would otherwise dominate the range.
	span := max - min + 1
	shifted := make([]int, len(counts.Pix))
	second := 0 // largest shifted value below the in-set plateau
	for i, c := range counts.Pix {
		shifted[i] = c - min + 1
		if shifted[i] < span && shifted[i] > second {
			second = shifted[i]
		}
	}

	top := span
	if hideMax {
		// Cells inside the set drop to zero; rescale against the rest.
		for i, v := range shifted {
			if v == span {
				shifted[i] = 0
			}
		}
		top = second
	} else if second > 0 {
		// Clamp in-set cells to one step past the largest escaping count.
		for i, v := range shifted {
			if v == span {
				shifted[i] = second + 1
			}
		}
		top = second + 1
	}

	out := mandel.NewField[float64](counts.W, counts.H)
	if top == 0 {
		return out
	}
	for i, v := range shifted {
		out.Pix[i] = float64(v) / float64(top)
	}
	return out
}

// checkFinite scans a normalized field for NaN or infinite values.
// The freeze-on-escape rule makes these impossible; finding one means the
// engine let a diverged orbit keep iterating.
func checkFinite(f *mandel.Field[float64]) error {
	for i, v := range f.Pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite intensity %g at cell (%d, %d)",
				mandel.ErrNumericInstability, v, i%f.W, i/f.W)
		}
	}
	return nil
}
