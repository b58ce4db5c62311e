package mandelgrid

import (
	"image"
	"testing"
)

func TestFieldRowAliasesStorage(t *testing.T) {
	f := NewField[int](3, 2)
	f.Row(1)[2] = 7
	if got := f.At(2, 1); got != 7 {
		t.Fatalf("At(2,1) = %d, want 7", got)
	}
	if got := f.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v", got)
	}
}

func TestGrayImage(t *testing.T) {
	f := NewField[float64](2, 2)
	f.Set(0, 0, 0)
	f.Set(1, 0, 1)
	f.Set(0, 1, 0.5)
	f.Set(1, 1, 1.5) // out of range, must clamp

	img := GrayImage(f)
	cases := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{1, 0, 255},
		{0, 1, 128},
		{1, 1, 255},
	}
	for _, tc := range cases {
		if got := img.GrayAt(tc.x, tc.y).Y; got != tc.want {
			t.Errorf("GrayAt(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
