package mandelgrid

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero iters", func(c *Config) { c.MaxIters = 0 }},
		{"negative iters", func(c *Config) { c.MaxIters = -5 }},
		{"zero scale", func(c *Config) { c.Rect.ImagScale = 0 }},
		{"negative scale", func(c *Config) { c.Rect.ImagScale = -2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRectRealScale(t *testing.T) {
	r := Rect{RealMin: -1.5, ImagMin: -1.0, ImagScale: 2.0}
	if got := r.RealScale(2000, 2000); got != 2.0 {
		t.Errorf("square aspect: want 2.0, got %g", got)
	}
	if got := r.RealScale(400, 200); got != 4.0 {
		t.Errorf("2:1 aspect: want 4.0, got %g", got)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"complex", StrategyComplex, true},
		{"native", StrategyComplex, true},
		{"decomposed", StrategyDecomposed, true},
		{"fake", StrategyDecomposed, true},
		{"simd", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseStrategy(%q): want ErrInvalidConfig, got %v", tc.in, err)
		}
	}
}

func TestRegionsValidate(t *testing.T) {
	for name, r := range Regions {
		cfg := Default()
		cfg.Rect = r
		if err := cfg.Validate(); err != nil {
			t.Errorf("region %q does not validate: %v", name, err)
		}
	}
}
