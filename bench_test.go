package fractal_test

import (
	"testing"

	fractal "github.com/dkoubek/fractalview"
)

// BenchmarkSample measures the full-grid cost at a typical interactive
// setting; worst case is n²·k kernel iterations.
func BenchmarkSample(b *testing.B) {
	p := fractal.Params{
		Kind:       fractal.Mandelbrot,
		MaxIter:    100,
		Resolution: 256,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := fractal.Sample(fractal.FullSet, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJuliaEscape(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fractal.JuliaEscape(complex(0.1, 0.1), fractal.DouadyRabbit, 500)
	}
}
