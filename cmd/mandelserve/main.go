// mandelserve renders an escape-time image of the Mandelbrot set and
// serves a live view of the render: finished tiles are pushed to browsers
// over a websocket and drawn onto a canvas as they arrive.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"time"

	mandel "github.com/infinitewarp/mandelgrid"
	"github.com/infinitewarp/mandelgrid/render"
)

// viewServer holds what the HTTP handlers need: the tile feed, the hello
// frame and the finished image. final and renderErr are written once
// before done closes and only read after, so no locking is needed.
type viewServer struct {
	hub   *hub
	hello helloMsg

	done      chan struct{}
	final     *image.Gray
	renderErr error
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := mandel.Default()

	addr := flag.String("addr", ":8080", "HTTP listen address")
	width := flag.Int("width", cfg.Width, "image pixel width")
	height := flag.Int("height", cfg.Height, "image pixel height")
	maxIters := flag.Int("iters", cfg.MaxIters, "max iterations per sample before it counts as in-set")
	realMin := flag.Float64("real-min", cfg.Rect.RealMin, "minimum real axis value on the complex plane")
	imagMin := flag.Float64("imag-min", cfg.Rect.ImagMin, "minimum imaginary axis value on the complex plane")
	imagScale := flag.Float64("imag-scale", cfg.Rect.ImagScale, "window height on the imaginary axis")
	strategy := flag.String("strategy", mandel.StrategyComplex.String(), "iteration arithmetic: complex or decomposed")
	region := flag.String("region", "", "named landmark window overriding the plane flags (seahorse, elephant, minibrot, triple, dragon, minispiral)")
	workers := flag.Int("workers", 0, "concurrent tile workers, 0 for all CPUs")
	flag.Parse()

	cfg.Width = *width
	cfg.Height = *height
	cfg.MaxIters = *maxIters
	cfg.Rect = mandel.Rect{RealMin: *realMin, ImagMin: *imagMin, ImagScale: *imagScale}
	if *region != "" {
		r, ok := mandel.Regions[*region]
		if !ok {
			return fmt.Errorf("%w: unknown region %q", mandel.ErrInvalidConfig, *region)
		}
		cfg.Rect = r
	}
	var err error
	if cfg.Strategy, err = mandel.ParseStrategy(*strategy); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cols := (cfg.Width + render.DefaultTileSize - 1) / render.DefaultTileSize
	rows := (cfg.Height + render.DefaultTileSize - 1) / render.DefaultTileSize
	vs := &viewServer{
		hub:   newHub(cols * rows),
		hello: helloMsg{Width: cfg.Width, Height: cfg.Height, TotalTiles: cols * rows},
		done:  make(chan struct{}),
	}

	opts := render.Options{
		Workers: *workers,
		OnTile: func(tile image.Rectangle, counts *mandel.Field[int]) {
			msg, err := encodeTile(tile, counts, cfg.MaxIters)
			if err != nil {
				log.Printf("encode tile %s: %v", tile, err)
				return
			}
			vs.hub.publish(msg)
		},
	}

	go func() {
		defer close(vs.done)
		start := time.Now()
		counts, err := render.Counts(context.Background(), cfg, opts)
		if err != nil {
			vs.renderErr = err
			log.Printf("render failed: %v", err)
			return
		}
		intensity, err := render.Normalize(counts, cfg.MaxIters, render.NormLinear, false)
		if err != nil {
			vs.renderErr = err
			log.Printf("normalize failed: %v", err)
			return
		}
		vs.final = mandel.GrayImage(intensity)
		log.Printf("render finished in %s (%d tiles, %s strategy)", time.Since(start), vs.hello.TotalTiles, cfg.Strategy)
	}()

	srv := newWebServer(*addr, vs)
	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

// encodeTile converts one finished tile of the counts field into a PNG
// tile frame, scaling counts linearly against the iteration budget. Only
// cells inside the tile are read; the rest of the field may still be
// mid-render.
func encodeTile(tile image.Rectangle, counts *mandel.Field[int], maxIters int) (tileMsg, error) {
	img := image.NewGray(image.Rect(0, 0, tile.Dx(), tile.Dy()))
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			level := uint8(counts.At(x, y) * 255 / maxIters)
			img.SetGray(x-tile.Min.X, y-tile.Min.Y, color.Gray{Y: level})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return tileMsg{}, err
	}
	return tileMsg{X: tile.Min.X, Y: tile.Min.Y, PNG: buf.Bytes()}, nil
}
