package render

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	mandel "github.com/infinitewarp/mandelgrid"
)

func TestRenderPipeline(t *testing.T) {
	cfg := smallConfig(40, 30, 50)
	got, err := Render(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got.W != cfg.Width || got.H != cfg.Height {
		t.Fatalf("shape = %dx%d, want %dx%d", got.W, got.H, cfg.Width, cfg.Height)
	}
	for i, v := range got.Pix {
		if v < 0 || v > 1 {
			t.Fatalf("intensity %g at cell %d out of [0,1]", v, i)
		}
	}
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(40, 30, 0)
	_, err := Render(context.Background(), cfg, Options{})
	if !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
}

// The result must not depend on how the work is split or how many
// workers run it.
func TestCountsWorkerIndependence(t *testing.T) {
	cfg := smallConfig(70, 50, 60)
	base, err := Counts(context.Background(), cfg, Options{Workers: 1, TileW: 70, TileH: 50})
	if err != nil {
		t.Fatal(err)
	}
	variants := []Options{
		{Workers: 1, TileW: 7, TileH: 11},
		{Workers: 8, TileW: 16, TileH: 16},
		{Workers: 3, TileW: 64, TileH: 1},
	}
	for _, opts := range variants {
		got, err := Counts(context.Background(), cfg, opts)
		if err != nil {
			t.Fatal(err)
		}
		for i := range base.Pix {
			if got.Pix[i] != base.Pix[i] {
				t.Fatalf("opts %+v: cell %d = %d, want %d", opts, i, got.Pix[i], base.Pix[i])
			}
		}
	}
}

func TestCountsHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Counts(ctx, smallConfig(100, 100, 50), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// OnTile must fire once per tile, after the tile's cells are final, and
// the tiles must cover every cell exactly once.
func TestOnTileCoversGrid(t *testing.T) {
	cfg := smallConfig(50, 30, 20)

	var mu sync.Mutex
	covered := make([]int, cfg.Width*cfg.Height)
	tilesSeen := 0
	opts := Options{
		Workers: 4,
		TileW:   16,
		TileH:   16,
		OnTile: func(tile image.Rectangle, counts *mandel.Field[int]) {
			for y := tile.Min.Y; y < tile.Max.Y; y++ {
				for x := tile.Min.X; x < tile.Max.X; x++ {
					if c := counts.At(x, y); c < 1 || c > cfg.MaxIters {
						t.Errorf("tile %s: count %d at (%d,%d) out of range", tile, c, x, y)
					}
				}
			}
			mu.Lock()
			defer mu.Unlock()
			tilesSeen++
			for y := tile.Min.Y; y < tile.Max.Y; y++ {
				for x := tile.Min.X; x < tile.Max.X; x++ {
					covered[y*cfg.Width+x]++
				}
			}
		},
	}
	if _, err := Counts(context.Background(), cfg, opts); err != nil {
		t.Fatal(err)
	}

	if want := 4 * 2; tilesSeen != want {
		t.Errorf("OnTile fired %d times, want %d", tilesSeen, want)
	}
	for i, n := range covered {
		if n != 1 {
			t.Fatalf("cell %d covered %d times, want exactly once", i, n)
		}
	}
}

func TestSplitRect(t *testing.T) {
	tiles := splitRect(image.Rect(0, 0, 50, 30), 16, 16)
	if len(tiles) != 4*2 {
		t.Fatalf("tile count = %d, want 8", len(tiles))
	}
	area := 0
	for _, tile := range tiles {
		if tile.Dx() > 16 || tile.Dy() > 16 || tile.Empty() {
			t.Fatalf("bad tile %s", tile)
		}
		area += tile.Dx() * tile.Dy()
	}
	if area != 50*30 {
		t.Fatalf("tiles cover %d pixels, want %d", area, 50*30)
	}
}
