package fractal

import "errors"

// Sentinel errors reported by parameter validation before any sampling work
// starts.
var (
	// ErrBounds indicates a view rectangle with non-increasing bounds.
	ErrBounds = errors.New("fractal: bounds must satisfy Xmin < Xmax and Ymin < Ymax")
	// ErrIterations indicates a non-positive iteration cap.
	ErrIterations = errors.New("fractal: iteration cap must be positive")
	// ErrResolution indicates a non-positive grid resolution.
	ErrResolution = errors.New("fractal: grid resolution must be positive")
	// ErrThreshold indicates a display threshold outside (0, MaxIter].
	ErrThreshold = errors.New("fractal: display threshold must be in (0, MaxIter]")
	// ErrKind indicates an unrecognized fractal kind name.
	ErrKind = errors.New("fractal: unknown fractal kind")
)
