package fractal

// Sample evaluates the escape-time kernel over an n×n grid spanning bounds
// shrunk by the zoom factor e^p.Zoom. Grid point (row i, col j) is the
// complex number xs[j] + ys[i]·i, with xs and ys each n evenly spaced
// values across the scaled x and y bounds, both endpoints included.
//
// Sample is synchronous and runs on the calling goroutine; worst case it
// performs n²·MaxIter O(1) complex operations.
func Sample(bounds ViewBounds, p Params) (*Field, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	scaled := bounds.Scaled(p.Zoom)
	xs := linspace(scaled.Xmin, scaled.Xmax, p.Resolution)
	ys := linspace(scaled.Ymin, scaled.Ymax, p.Resolution)

	f := NewField(p.Resolution)
	for i, y := range ys {
		for j, x := range xs {
			f.set(i, j, Evaluate(p.Kind, complex(x, y), p.C, p.MaxIter))
		}
	}
	return f, nil
}

// linspace returns n evenly spaced values over [a, b] inclusive of both
// endpoints. n = 1 degenerates to the single value a (the lower bound);
// downstream translation math relies on that convention.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b // exact upper endpoint regardless of rounding
	return out
}
