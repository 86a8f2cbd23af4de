package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// rowChunk is the fewest rows handed to one worker.
const rowChunk = 16

// Linspace returns n evenly spaced samples over [start, end].
func Linspace(start, end float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}
	floats.Span(out, start, end)
	return out, nil
}

// Matrix is a dense row-major matrix.
type Matrix [][]float64

// NewMatrix allocates a zeroed rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Shape returns rows and columns.
func (m Matrix) Shape() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// SameShape reports whether m and o have identical dimensions.
func (m Matrix) SameShape(o Matrix) bool {
	r1, c1 := m.Shape()
	r2, c2 := o.Shape()
	return r1 == r2 && c1 == c2
}

func (m Matrix) Min() float64 {
	v := math.Inf(1)
	for _, row := range m {
		if len(row) > 0 {
			v = math.Min(v, floats.Min(row))
		}
	}
	return v
}

func (m Matrix) Max() float64 {
	v := math.Inf(-1)
	for _, row := range m {
		if len(row) > 0 {
			v = math.Max(v, floats.Max(row))
		}
	}
	return v
}

// Map applies fn element-wise and returns a new matrix.
func (m Matrix) Map(fn func(float64) float64) Matrix {
	rows, cols := m.Shape()
	out := NewMatrix(rows, cols)
	for i := range m {
		for j, v := range m[i] {
			out[i][j] = fn(v)
		}
	}
	return out
}

// Normalize rescales m onto [0, 1]. A constant matrix maps to 0.5.
func (m Matrix) Normalize() Matrix {
	lo, hi := m.Min(), m.Max()
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return m.Map(func(float64) float64 { return 0.5 })
	}
	return m.Map(func(v float64) float64 { return (v - lo) / span })
}

// Meshgrid builds coordinate matrices from two axes using "xy" indexing:
// both results are len(ys)×len(xs), X varying along columns, Y along rows.
func Meshgrid(xs, ys []float64) (Matrix, Matrix, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	X := NewMatrix(len(ys), len(xs))
	Y := NewMatrix(len(ys), len(xs))
	for i, y := range ys {
		copy(X[i], xs)
		for j := range xs {
			Y[i][j] = y
		}
	}
	return X, Y, nil
}

// Zip combines same-shaped matrices element-wise. Rows are filled
// concurrently, so fn must be safe to call from several goroutines.
func Zip(a, b Matrix, fn func(x, y float64) float64) (Matrix, error) {
	if !a.SameShape(b) {
		ra, ca := a.Shape()
		rb, cb := b.Shape()
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ra, ca, rb, cb)
	}
	rows, cols := a.Shape()
	out := NewMatrix(rows, cols)
	ParallelFor(rows, rowChunk, func(start, end int) {
		for i := start; i < end; i++ {
			for j := range a[i] {
				out[i][j] = fn(a[i][j], b[i][j])
			}
		}
	})
	return out, nil
}
