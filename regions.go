package mandelgrid

// Classic regions / landmarks in the Mandelbrot set, expressed as plane
// windows for Config.Rect. Pass one of these to render a close-up instead
// of the full-set view.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Rect{
		RealMin:   -0.8,
		ImagMin:   0.05,
		ImagScale: 0.10,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Rect{
		RealMin:   -1.85,
		ImagMin:   -0.10,
		ImagScale: 0.08,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Rect{
		RealMin:   -0.7435,
		ImagMin:   0.1310,
		ImagScale: 0.0015,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Rect{
		RealMin:   -0.7480,
		ImagMin:   0.0950,
		ImagScale: 0.0030,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Rect{
		RealMin:   -0.7400,
		ImagMin:   0.1800,
		ImagScale: 0.0050,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Rect{
		RealMin:   -1.7390,
		ImagMin:   -0.0235,
		ImagScale: 0.0015,
	}
)

// Regions maps CLI-friendly names to the landmark windows above.
var Regions = map[string]Rect{
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}
