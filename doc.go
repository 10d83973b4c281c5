// Package fractal evaluates escape-time fractals (the Mandelbrot set and
// Julia sets) over a sampled rectangle of the complex plane.
//
// The kernel counts how many iterations of z ← z² + c a point survives
// before its magnitude exceeds 2, saturating at a caller-supplied cap.
// Sample runs the kernel over an n×n grid derived from a ViewBounds and a
// zoom exponent, producing a Field of iteration counts that a Renderer
// turns into an image.
//
// Both the kernel and the sampler are pure and synchronous: Sample runs to
// completion on the calling goroutine and costs O(n²·k) complex operations
// in the worst case (every grid point iterating to the cap k), so callers
// that need responsiveness must bound n and k themselves.
package fractal
