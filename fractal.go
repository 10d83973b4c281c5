package fractal

// Kind selects which escape-time recurrence the sampler evaluates.
type Kind string

const (
	// Mandelbrot iterates z ← z²+c with z seeded by the grid point itself,
	// c varying per point.
	Mandelbrot Kind = "mandelbrot"
	// Julia iterates z ← z²+c with a fixed constant c, z seeded by the
	// grid point.
	Julia Kind = "julia"
)

// ParseKind maps a kind name (as used in flags and websocket messages) to a
// Kind, returning ErrKind for anything else.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Mandelbrot, Julia:
		return Kind(s), nil
	}
	return "", ErrKind
}

// MandelbrotEscape returns the 0-based count of completed z ← z²+c
// iterations before |z| first exceeds 2, starting from z = c. If the orbit
// stays bounded through maxIter iterations it returns maxIter.
//
// |z| > 2 is the escape bound: once the modulus passes 2 it grows
// monotonically under this recurrence, so the point is certainly outside
// the set.
func MandelbrotEscape(c complex128, maxIter int) int {
	return JuliaEscape(c, c, maxIter)
}

// JuliaEscape is the same loop as MandelbrotEscape but seeds z with the
// grid point z0 while c stays fixed across the whole grid. Consequently
// JuliaEscape(c, c, k) == MandelbrotEscape(c, k).
func JuliaEscape(z0, c complex128, maxIter int) int {
	z := z0
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		// Squared-magnitude test; |z| > 2 without the sqrt.
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
	}
	return maxIter
}

// Evaluate dispatches a single grid point to the kernel for kind. The
// result is always in [0, maxIter]. juliaC is only read when kind is
// Julia.
func Evaluate(kind Kind, point, juliaC complex128, maxIter int) int {
	if kind == Julia {
		return JuliaEscape(point, juliaC, maxIter)
	}
	return MandelbrotEscape(point, maxIter)
}
