package fractal

import (
	"image"
)

// Renderer is the boundary to the display side: it maps an iteration field
// sampled with cap maxIter to a color image. Implementations treat the
// field as read-only and apply any display threshold to a copy.
type Renderer interface {
	Render(f *Field, maxIter int) (*image.RGBA, error)
}
