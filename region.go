package fractal

import "math"

// ViewBounds is the rectangle of the complex plane to sample: x spans the
// real axis, y the imaginary axis.
type ViewBounds struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Validate reports ErrBounds unless Xmin < Xmax and Ymin < Ymax.
func (b ViewBounds) Validate() error {
	if b.Xmin >= b.Xmax || b.Ymin >= b.Ymax {
		return ErrBounds
	}
	return nil
}

// Scaled divides every bound by e^zoom, the multiplicative zoom factor.
// zoom = 0 returns b unchanged (e⁰ = 1, and dividing by 1 is exact in
// floating point).
func (b ViewBounds) Scaled(zoom float64) ViewBounds {
	s := math.Exp(zoom)
	return ViewBounds{
		Xmin: b.Xmin / s,
		Xmax: b.Xmax / s,
		Ymin: b.Ymin / s,
		Ymax: b.Ymax / s,
	}
}

// Classic regions / landmarks of the Mandelbrot set, usable as shell
// presets.
var (
	// FullSet – the whole set with its surrounding halo
	FullSet = ViewBounds{
		Xmin: -2.0,
		Xmax: 1.0,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// SeahorseValley – dense filaments and repeating “seahorse” curls
	SeahorseValley = ViewBounds{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = ViewBounds{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = ViewBounds{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = ViewBounds{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// JuliaSquare – symmetric square view used for Julia constants
	JuliaSquare = ViewBounds{
		Xmin: -1.5,
		Xmax: 1.5,
		Ymin: -1.5,
		Ymax: 1.5,
	}
)

// Well-known Julia constants, paired with JuliaSquare as shell presets.
var (
	// DouadyRabbit – three-lobed “rabbit” with spiral ears
	DouadyRabbit = complex(-0.122561, 0.744862)

	// Dendrite – branching tree with no interior
	Dendrite = complex(0, 1)

	// SanMarco – basilica-like arches along the real axis
	SanMarco = complex(-0.75, 0)

	// SiegelDisk – smooth invariant disk around an irrational rotation
	SiegelDisk = complex(-0.390541, -0.586788)
)
