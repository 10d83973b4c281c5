package fractal_test

import (
	"fmt"

	fractal "github.com/dkoubek/fractalview"
)

// ExampleMandelbrotEscape shows the two ends of the contract: a bounded
// orbit saturates at the cap, an immediately escaping point returns 0.
func ExampleMandelbrotEscape() {
	fmt.Println(fractal.MandelbrotEscape(complex(0, 0), 50))
	fmt.Println(fractal.MandelbrotEscape(complex(3, 0), 10))

	// Output:
	// 50
	// 0
}

// ExampleSample renders a coarse 3×3 view of the whole Mandelbrot set.
// The middle row lies on the real axis, where the left two points belong
// to the set (count saturates at the cap of 5) and c=1 escapes after one
// iteration.
func ExampleSample() {
	field, err := fractal.Sample(fractal.FullSet, fractal.Params{
		Kind:       fractal.Mandelbrot,
		MaxIter:    5,
		Resolution: 3,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for row := 0; row < field.Size(); row++ {
		fmt.Println(field.At(row, 0), field.At(row, 1), field.At(row, 2))
	}

	// Output:
	// 0 0 0
	// 5 5 1
	// 0 0 0
}
