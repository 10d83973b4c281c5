// Package render maps iteration fields to color images using named color
// scales, plus the color-bar legend shown next to them.
package render

import (
	"errors"
	"fmt"
	"image"

	fractal "github.com/dkoubek/fractalview"
)

// ErrUnknownScale is returned by New for a scale name not in Scales(). It
// is a configuration error of the shell, not of the sampling core.
var ErrUnknownScale = errors.New("render: unknown color scale")

// Mapper colors iteration fields through one named scale, optionally
// clamping displayed values to a threshold first. It implements
// fractal.Renderer.
type Mapper struct {
	scale     Scale
	threshold int
}

// New builds a Mapper for the named scale. threshold <= 0 disables the
// display clamp.
func New(scaleName string, threshold int) (*Mapper, error) {
	s, ok := scales[scaleName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, scaleName)
	}
	return &Mapper{scale: s, threshold: threshold}, nil
}

var _ fractal.Renderer = (*Mapper)(nil)

// Render colors f into an n×n image. Values are normalized against
// maxIter, so the color range always corresponds to [0, maxIter] no matter
// what the field actually contains; the threshold clamp happens on a copy
// and leaves f untouched.
func (m *Mapper) Render(f *fractal.Field, maxIter int) (*image.RGBA, error) {
	if maxIter <= 0 {
		return nil, fractal.ErrIterations
	}
	shown := f.Clamped(m.threshold)

	n := shown.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	inv := 1 / float64(maxIter)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			img.SetRGBA(col, row, m.scale(float64(shown.At(row, col))*inv))
		}
	}
	return img, nil
}

// Colorbar renders a vertical legend strip of the Mapper's scale: the top
// row corresponds to the iteration cap, the bottom row to 0. The caller
// labels the axis with the cap it passed to Render.
func (m *Mapper) Colorbar(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		t := 1.0
		if h > 1 {
			t = 1 - float64(row)/float64(h-1)
		}
		c := m.scale(t)
		for col := 0; col < w; col++ {
			img.SetRGBA(col, row, c)
		}
	}
	return img
}
