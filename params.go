package fractal

// Params carries everything besides the view rectangle that a render needs.
// A Params value is treated as an immutable snapshot: the shell commits a
// fresh copy per regeneration rather than mutating a shared one.
type Params struct {
	// Kind selects the recurrence (Mandelbrot or Julia).
	Kind Kind
	// MaxIter is the iteration cap k; every field value lands in [0, MaxIter].
	MaxIter int
	// Resolution is the grid edge n; Sample produces an n×n field.
	Resolution int
	// C is the Julia constant. Ignored for Mandelbrot.
	C complex128
	// Zoom is the zoom exponent; the effective scale factor is e^Zoom.
	Zoom float64
	// Threshold, when positive, clamps displayed values to min(v, Threshold).
	// It is applied by renderers on a copy of the field, never to the field
	// itself. Zero means no clamp.
	Threshold int
}

// Validate rejects parameter combinations the sampler must not see:
// non-positive iteration cap or resolution, or a threshold outside
// (0, MaxIter]. All other values are accepted as-is.
func (p Params) Validate() error {
	if p.MaxIter <= 0 {
		return ErrIterations
	}
	if p.Resolution <= 0 {
		return ErrResolution
	}
	if p.Threshold < 0 || p.Threshold > p.MaxIter {
		return ErrThreshold
	}
	if _, err := ParseKind(string(p.Kind)); err != nil {
		return err
	}
	return nil
}
