package fractal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	fractal "github.com/dkoubek/fractalview"
)

// TestViewBounds_ScaledZeroIsIdentity: e^0 = 1 and dividing by 1 is exact,
// so zoom 0 must reproduce the bounds bit-for-bit.
func TestViewBounds_ScaledZeroIsIdentity(t *testing.T) {
	for _, b := range []fractal.ViewBounds{fractal.FullSet, fractal.SeahorseValley, fractal.JuliaSquare} {
		require.Equal(t, b, b.Scaled(0))
	}
}

func TestViewBounds_Scaled(t *testing.T) {
	b := fractal.ViewBounds{Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5}
	s := math.Exp(0.5)

	scaled := b.Scaled(0.5)
	require.InDelta(t, b.Xmin/s, scaled.Xmin, 1e-15)
	require.InDelta(t, b.Xmax/s, scaled.Xmax, 1e-15)
	require.InDelta(t, b.Ymin/s, scaled.Ymin, 1e-15)
	require.InDelta(t, b.Ymax/s, scaled.Ymax, 1e-15)

	// Negative zoom widens the view.
	wider := b.Scaled(-1)
	require.Less(t, wider.Xmin, b.Xmin)
	require.Greater(t, wider.Xmax, b.Xmax)
}

// TestLandmarks_Valid guards the predefined regions against typos.
func TestLandmarks_Valid(t *testing.T) {
	landmarks := map[string]fractal.ViewBounds{
		"FullSet":        fractal.FullSet,
		"SeahorseValley": fractal.SeahorseValley,
		"ElephantValley": fractal.ElephantValley,
		"SpiralMinibrot": fractal.SpiralMinibrot,
		"TripleSpiral":   fractal.TripleSpiral,
		"JuliaSquare":    fractal.JuliaSquare,
	}
	for name, b := range landmarks {
		require.NoError(t, b.Validate(), name)
	}
}
