package physics

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTinTable(t *testing.T) {
	tab := TinTable()

	assert.Equal(t, "Sn", tab.Element)
	assert.Equal(t, 50, tab.Z)
	assert.Len(t, tab.Binding, 25)
	assert.Equal(t, 916.733, tab.Binding[108])
	assert.Equal(t, 1121.942, tab.Binding[132])

	as := tab.MassNumbers()
	assert.Equal(t, 108, as[0])
	assert.Equal(t, 132, as[len(as)-1])
}

func TestOneNeutron(t *testing.T) {
	tab := TinTable()
	sn := tab.OneNeutron()

	require.Len(t, sn, 24)
	assert.Equal(t, 109, sn[0].A)
	for _, p := range sn {
		want := tab.Binding[p.A] - tab.Binding[p.A-1]
		if p.Value != want {
			t.Errorf("S_n(%d) = %v, want %v", p.A, p.Value, want)
		}
		assert.Equal(t, p.A-50, p.N)
	}
}

func TestTwoNeutron(t *testing.T) {
	tab := TinTable()
	s2n := tab.TwoNeutron()

	require.Len(t, s2n, 23)
	assert.Equal(t, 110, s2n[0].A)
	for _, p := range s2n {
		want := tab.Binding[p.A] - tab.Binding[p.A-2]
		if p.Value != want {
			t.Errorf("S_2n(%d) = %v, want %v", p.A, p.Value, want)
		}
	}
}

func TestOneNeutron_EvenOddStaggering(t *testing.T) {
	// Even-N isotopes are more bound than their odd neighbours.
	sn := TinTable().OneNeutron()
	for i := 1; i < len(sn); i++ {
		if sn[i].N%2 == 0 && sn[i].Value <= sn[i-1].Value {
			t.Errorf("S_n(N=%d) = %v should exceed S_n(N=%d) = %v",
				sn[i].N, sn[i].Value, sn[i-1].N, sn[i-1].Value)
		}
	}
}

func TestStaggering(t *testing.T) {
	tab := TinTable()
	d3 := tab.Staggering()

	require.Len(t, d3, 23)
	for _, p := range d3 {
		if p.Value <= 0 {
			t.Errorf("D3(A=%d) = %v, expected positive pairing gap", p.A, p.Value)
		}
	}

	// N=62 (A=112): (2*949.191 - 940.380 - 956.402)/2
	want := (2*949.191 - 940.380 - 956.402) / 2
	for _, p := range d3 {
		if p.A == 112 && math.Abs(p.Value-want) > 1e-9 {
			t.Errorf("D3(112) = %v, want %v", p.Value, want)
		}
	}
}

func TestFiniteDifference_Gaps(t *testing.T) {
	tab := &Table{Element: "X", Z: 10, Binding: map[int]float64{20: 100, 21: 108, 23: 125}}

	sn := tab.OneNeutron()
	require.Len(t, sn, 1)
	assert.Equal(t, 21, sn[0].A)

	s2n := tab.TwoNeutron()
	require.Len(t, s2n, 1)
	assert.Equal(t, 23, s2n[0].A)
	assert.Equal(t, 17.0, s2n[0].Value)
}

func TestShellClosureA(t *testing.T) {
	assert.Equal(t, 132, TinTable().ShellClosureA(MagicN82))
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	data := []byte("element: Pb\nz: 82\nbinding:\n  206: 1622.3\n  207: 1629.1\n  208: 1636.4\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	tab, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "Pb", tab.Element)
	assert.Len(t, tab.OneNeutron(), 2)
}

func TestParseTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"empty", "element: X\nz: 1\n", ErrEmptyTable},
		{"A below Z", "element: X\nz: 50\nbinding:\n  40: 100\n", ErrInvalidEntry},
		{"negative A", "element: X\nz: 0\nbinding:\n  -3: 10\n", ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.data))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	xs, ys := Split([]Point{{A: 110, Value: 1.5}, {A: 111, Value: 2.5}})
	assert.Equal(t, []float64{110, 111}, xs)
	assert.Equal(t, []float64{1.5, 2.5}, ys)
}
