package mandelgrid

import (
	"image"
	"image/color"
)

// Field is a dense row-major 2D array of grid values: iteration counts
// from the evaluator, intensities from the normalizer, coordinate planes
// from the grid builder. Row 0 corresponds to ImagMin.
type Field[T int | float64] struct {
	W, H int
	Pix  []T
}

// NewField allocates a zeroed w x h field.
func NewField[T int | float64](w, h int) *Field[T] {
	return &Field[T]{W: w, H: h, Pix: make([]T, w*h)}
}

func (f *Field[T]) At(x, y int) T {
	return f.Pix[y*f.W+x]
}

func (f *Field[T]) Set(x, y int, v T) {
	f.Pix[y*f.W+x] = v
}

// Row returns the y-th row as a slice aliasing the field's storage.
func (f *Field[T]) Row(y int) []T {
	return f.Pix[y*f.W : (y+1)*f.W]
}

func (f *Field[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.W, f.H)
}

// GrayImage converts a [0,1] intensity field to an 8-bit grayscale image,
// the input every display adapter takes. Values are clamped, so a field
// that slightly overshoots the range still produces a valid image.
func GrayImage(f *Field[float64]) *image.Gray {
	img := image.NewGray(f.Bounds())
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			img.SetGray(x, y, color.Gray{Y: grayLevel(f.At(x, y))})
		}
	}
	return img
}

func grayLevel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
