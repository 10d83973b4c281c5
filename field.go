package fractal

// Field is an n×n grid of iteration counts, row-major: row i follows the
// imaginary axis, column j the real axis, matching the sampling order in
// Sample. Values are in [0, k] for the iteration cap k the field was
// sampled with.
type Field struct {
	n    int
	data []int
}

// NewField allocates a zeroed n×n field. n must be positive; Sample
// validates that before calling.
func NewField(n int) *Field {
	return &Field{n: n, data: make([]int, n*n)}
}

// Size returns the grid edge n.
func (f *Field) Size() int { return f.n }

// At returns the iteration count at (row, col).
func (f *Field) At(row, col int) int {
	return f.data[row*f.n+col]
}

func (f *Field) set(row, col, v int) {
	f.data[row*f.n+col] = v
}

// Values exposes the backing row-major slice for renderers. Callers must
// not modify it.
func (f *Field) Values() []int { return f.data }

// Max returns the largest count in the field, 0 for an empty one.
func (f *Field) Max() int {
	max := 0
	for _, v := range f.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Clamped returns a new field with every value replaced by
// min(value, threshold). The receiver is never modified, so re-rendering
// with a different threshold needs no re-sampling. A non-positive
// threshold yields a plain copy. Clamping an already-clamped field with
// the same threshold is a no-op.
func (f *Field) Clamped(threshold int) *Field {
	out := &Field{n: f.n, data: make([]int, len(f.data))}
	copy(out.data, f.data)
	if threshold <= 0 {
		return out
	}
	for i, v := range out.data {
		if v > threshold {
			out.data[i] = threshold
		}
	}
	return out
}
