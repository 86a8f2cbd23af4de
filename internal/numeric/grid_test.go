package numeric

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		n          int
		first      float64
		last       float64
	}{
		{"unit", 0, 1, 11, 0, 1},
		{"theta", 0, math.Pi, 200, 0, math.Pi},
		{"single", 2.5, 7, 1, 2.5, 2.5},
		{"descending", 1, -1, 3, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Linspace(tt.start, tt.end, tt.n)
			require.NoError(t, err)
			require.Len(t, got, tt.n)
			assert.InDelta(t, tt.first, got[0], 1e-12)
			assert.InDelta(t, tt.last, got[len(got)-1], 1e-12)
		})
	}
}

func TestLinspace_Spacing(t *testing.T) {
	got, err := Linspace(0, 0.5, 200)
	require.NoError(t, err)

	step := 0.5 / 199
	for i := 1; i < len(got); i++ {
		if math.Abs(got[i]-got[i-1]-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %v", i, got[i]-got[i-1])
		}
	}
}

func TestLinspace_Empty(t *testing.T) {
	_, err := Linspace(0, 1, 0)
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestMeshgrid(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20}

	X, Y, err := Meshgrid(xs, ys)
	require.NoError(t, err)

	rows, cols := X.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.True(t, X.SameShape(Y))

	assert.Equal(t, []float64{1, 2, 3}, []float64(X[1]))
	assert.Equal(t, []float64{20, 20, 20}, []float64(Y[1]))
}

func TestMatrix_Normalize(t *testing.T) {
	m := Matrix{{-1, 0}, {1, 3}}
	n := m.Normalize()

	assert.InDelta(t, 0.0, n[0][0], 1e-12)
	assert.InDelta(t, 0.25, n[0][1], 1e-12)
	assert.InDelta(t, 1.0, n[1][1], 1e-12)
	assert.Equal(t, -1.0, m[0][0], "source matrix must not change")
}

func TestMatrix_NormalizeConstant(t *testing.T) {
	m := Matrix{{2, 2}, {2, 2}}
	for _, row := range m.Normalize() {
		for _, v := range row {
			assert.Equal(t, 0.5, v)
		}
	}
}

func TestZip_ShapeMismatch(t *testing.T) {
	_, err := Zip(NewMatrix(2, 2), NewMatrix(2, 3), func(a, b float64) float64 { return a + b })
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 200, 1001} {
		var mu sync.Mutex
		seen := make([]int, n)
		ParallelFor(n, 16, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, c := range seen {
			require.Equal(t, 1, c, "n=%d index %d", n, i)
		}
	}
}

func TestZipLarge(t *testing.T) {
	xs, err := Linspace(0, 1, 200)
	require.NoError(t, err)
	X, Y, err := Meshgrid(xs, xs)
	require.NoError(t, err)
	sum, err := Zip(X, Y, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sum[199][199], 1e-12)
	assert.InDelta(t, xs[7]+xs[123], sum[123][7], 1e-12)
}
