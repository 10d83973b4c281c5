package main

import (
	"sort"

	fractal "github.com/dkoubek/fractalview"
)

// A preset bundles everything a view needs besides the user-adjustable
// iteration depth and zoom: the recurrence kind, the plane rectangle and,
// for Julia sets, the constant c.
type preset struct {
	kind   fractal.Kind
	bounds fractal.ViewBounds
	c      complex128
}

var presets = map[string]preset{
	// Mandelbrot landmarks
	"full":     {fractal.Mandelbrot, fractal.FullSet, 0},
	"seahorse": {fractal.Mandelbrot, fractal.SeahorseValley, 0},
	"elephant": {fractal.Mandelbrot, fractal.ElephantValley, 0},
	"spiral":   {fractal.Mandelbrot, fractal.SpiralMinibrot, 0},
	"triple":   {fractal.Mandelbrot, fractal.TripleSpiral, 0},

	// Julia constants, all on the symmetric square view
	"rabbit":   {fractal.Julia, fractal.JuliaSquare, fractal.DouadyRabbit},
	"dendrite": {fractal.Julia, fractal.JuliaSquare, fractal.Dendrite},
	"sanmarco": {fractal.Julia, fractal.JuliaSquare, fractal.SanMarco},
	"siegel":   {fractal.Julia, fractal.JuliaSquare, fractal.SiegelDisk},
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
