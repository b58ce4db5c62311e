// mandelgrid renders an escape-time image of the Mandelbrot set and saves
// it as a grayscale PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	mandel "github.com/infinitewarp/mandelgrid"
	"github.com/infinitewarp/mandelgrid/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	cfg := mandel.Default()

	width := flag.Int("width", cfg.Width, "output image pixel width")
	height := flag.Int("height", cfg.Height, "output image pixel height")
	maxIters := flag.Int("iters", cfg.MaxIters, "max iterations per sample before it counts as in-set")
	realMin := flag.Float64("real-min", cfg.Rect.RealMin, "minimum real axis value on the complex plane")
	imagMin := flag.Float64("imag-min", cfg.Rect.ImagMin, "minimum imaginary axis value on the complex plane")
	imagScale := flag.Float64("imag-scale", cfg.Rect.ImagScale, "window height on the imaginary axis")
	strategy := flag.String("strategy", mandel.StrategyComplex.String(), "iteration arithmetic: complex or decomposed")
	norm := flag.String("norm", render.NormLinear.String(), "normalization policy: linear or stretch")
	hideMax := flag.Bool("hide-max", false, "with -norm stretch, drop in-set samples to black")
	region := flag.String("region", "", "named landmark window overriding the plane flags (seahorse, elephant, minibrot, triple, dragon, minispiral)")
	workers := flag.Int("workers", 0, "concurrent tile workers, 0 for all CPUs")
	out := flag.String("out", "mandel.png", "output PNG path")
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
	opts := render.Options{Workers: *workers, HideMax: *hideMax}
	if opts.Norm, err = render.ParseNorm(*norm); err != nil {
		return err
	}

	start := time.Now()
	counts, err := render.Counts(context.Background(), cfg, opts)
	if err != nil {
		return err
	}
	total := 0
	for _, c := range counts.Pix {
		total += c
	}
	log.Printf("performed %d mandelbrot iterations in %s (%s strategy)", total, time.Since(start), cfg.Strategy)

	start = time.Now()
	intensity, err := render.Normalize(counts, cfg.MaxIters, opts.Norm, opts.HideMax)
	if err != nil {
		return err
	}
	log.Printf("normalized in %s (%s)", time.Since(start), opts.Norm)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, mandel.GrayImage(intensity)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.Printf("rendered image saved to %q", *out)
	return nil
}
