package physics

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// MagicN82 is the neutron shell closure highlighted on the separation plot.
const MagicN82 = 82

//go:embed data/tin_ame2020.yaml
var tinTable []byte

// Table maps mass number A to total binding energy B(A) in MeV for one
// isotopic chain. Tables are read-only once loaded.
type Table struct {
	Element   string          `yaml:"element"`
	Z         int             `yaml:"z"`
	Source    string          `yaml:"source"`
	Reference string          `yaml:"reference"`
	Binding   map[int]float64 `yaml:"binding"`
}

// Point is a derived value attached to a nucleus of the chain.
type Point struct {
	A     int
	N     int
	Value float64
}

// TinTable returns the embedded AME2020 table for Sn isotopes.
func TinTable() *Table {
	t, err := ParseTable(tinTable)
	if err != nil {
		panic(fmt.Sprintf("embedded tin table: %v", err))
	}
	return t
}

// LoadTable reads a YAML table from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) Validate() error {
	if len(t.Binding) == 0 {
		return ErrEmptyTable
	}
	for a, b := range t.Binding {
		if a <= 0 || a < t.Z {
			return fmt.Errorf("%w: A=%d (Z=%d)", ErrInvalidEntry, a, t.Z)
		}
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: B(%d)=%v", ErrInvalidEntry, a, b)
		}
	}
	return nil
}

// MassNumbers returns the tabulated A values in ascending order.
func (t *Table) MassNumbers() []int {
	as := make([]int, 0, len(t.Binding))
	for a := range t.Binding {
		as = append(as, a)
	}
	sort.Ints(as)
	return as
}

func (t *Table) lookup(a int) (float64, bool) {
	b, ok := t.Binding[a]
	return b, ok
}

// finiteDifference emits B(A) - B(A-k) for every A past the k-th entry
// whose partner A-k is tabulated.
func (t *Table) finiteDifference(k int) []Point {
	as := t.MassNumbers()
	if len(as) <= k {
		return nil
	}
	out := make([]Point, 0, len(as)-k)
	for _, a := range as[k:] {
		prev, ok := t.lookup(a - k)
		if !ok {
			continue
		}
		out = append(out, Point{A: a, N: a - t.Z, Value: t.Binding[a] - prev})
	}
	return out
}

// OneNeutron returns S_n(A) = B(A) - B(A-1).
func (t *Table) OneNeutron() []Point {
	return t.finiteDifference(1)
}

// TwoNeutron returns S_2n(A) = B(A) - B(A-2).
func (t *Table) TwoNeutron() []Point {
	return t.finiteDifference(2)
}

// Staggering returns the three-point odd-even indicator
//
//	D3(N) = (-1)^N / 2 * (2B(N) - B(N-1) - B(N+1))
//
// for every nucleus with both neighbours tabulated. It is positive for
// both parities when pairing is present.
func (t *Table) Staggering() []Point {
	as := t.MassNumbers()
	out := make([]Point, 0, len(as))
	for _, a := range as {
		lo, okLo := t.lookup(a - 1)
		hi, okHi := t.lookup(a + 1)
		if !okLo || !okHi {
			continue
		}
		n := a - t.Z
		sign := 1.0
		if n%2 != 0 {
			sign = -1.0
		}
		out = append(out, Point{A: a, N: n, Value: sign / 2 * (2*t.Binding[a] - lo - hi)})
	}
	return out
}

// ShellClosureA returns the mass number of the isotope with n neutrons.
func (t *Table) ShellClosureA(n int) int {
	return t.Z + n
}

// Split returns the A and value columns of pts as float slices.
func Split(pts []Point) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.A)
		ys[i] = p.Value
	}
	return xs, ys
}
