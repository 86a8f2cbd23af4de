package figure

import (
	"math"
	"sort"

	"github.com/san-kum/nucviz/internal/physics"
)

// Color is a named plot colour. Name is understood by terminal renderers,
// Hex by vector ones.
type Color struct {
	Name string
	Hex  string
}

// Default line colours, in matplotlib cycle order.
var (
	Blue   = Color{"blue", "#1f77b4"}
	Orange = Color{"darkorange", "#ff7f0e"}
	Green  = Color{"green", "#2ca02c"}
	Red    = Color{"red", "#d62728"}
	Purple = Color{"purple", "#9467bd"}
	Brown  = Color{"brown", "#8c564b"}
	Gray   = Color{"gray", "#808080"}
	Black  = Color{"black", "#000000"}

	Cycle = []Color{Blue, Orange, Green, Red, Purple, Brown}
)

// CycleColor returns the i-th colour of the default cycle.
func CycleColor(i int) Color {
	return Cycle[i%len(Cycle)]
}

type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerSquare
	MarkerDiamond
)

type Range struct {
	Min, Max float64
}

func (r Range) Span() float64 { return r.Max - r.Min }

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Series is one line of a 2D chart. X and Y have equal length.
type Series struct {
	Name   string
	Label  string
	X, Y   []float64
	Color  Color
	Marker Marker
	Width  float64
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Guide is a reference line spanning the whole plot area.
type Guide struct {
	Orientation Orientation
	At          float64
	Label       string
	Color       Color
	Dashed      bool
}

// Fact is a derived scalar reported next to a figure.
type Fact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Figure struct {
	Name        string
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	// Note is a small boxed annotation in the lower-left corner.
	Note       string
	Stem       string
	Series     []Series
	Guides     []Guide
	XRange     *Range
	YRange     *Range
	MinorTicks bool
	Surface    *physics.Surface
	Facts      []Fact
}

// IsSurface reports whether the figure is a 3D surface rather than a chart.
func (f *Figure) IsSurface() bool {
	return f.Surface != nil
}

// Bounds returns the axis ranges, falling back to the data extent padded
// by 5% when a range is unset.
func (f *Figure) Bounds() (Range, Range) {
	xr := Range{math.Inf(1), math.Inf(-1)}
	yr := Range{math.Inf(1), math.Inf(-1)}
	for _, s := range f.Series {
		for i := range s.X {
			if math.IsNaN(s.X[i]) || math.IsNaN(s.Y[i]) {
				continue
			}
			xr.Min, xr.Max = math.Min(xr.Min, s.X[i]), math.Max(xr.Max, s.X[i])
			yr.Min, yr.Max = math.Min(yr.Min, s.Y[i]), math.Max(yr.Max, s.Y[i])
		}
	}
	for _, g := range f.Guides {
		if g.Orientation == Vertical {
			xr.Min, xr.Max = math.Min(xr.Min, g.At), math.Max(xr.Max, g.At)
		}
	}
	xr, yr = pad(xr), pad(yr)
	if f.XRange != nil {
		xr = *f.XRange
	}
	if f.YRange != nil {
		yr = *f.YRange
	}
	return xr, yr
}

func pad(r Range) Range {
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return Range{0, 1}
	}
	span := r.Span()
	if span == 0 {
		span = math.Max(math.Abs(r.Min), 1)
	}
	return Range{r.Min - 0.05*span, r.Max + 0.05*span}
}

// Abscissa returns the sorted union of every series' X values.
func (f *Figure) Abscissa() []float64 {
	seen := make(map[float64]bool)
	var xs []float64
	for _, s := range f.Series {
		for _, x := range s.X {
			if !seen[x] {
				seen[x] = true
				xs = append(xs, x)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

// Aligned resamples every series onto Abscissa, leaving NaN where a series
// has no sample.
func (f *Figure) Aligned() ([]float64, [][]float64) {
	xs := f.Abscissa()
	index := make(map[float64]int, len(xs))
	for i, x := range xs {
		index[x] = i
	}
	out := make([][]float64, len(f.Series))
	for si, s := range f.Series {
		col := make([]float64, len(xs))
		for i := range col {
			col[i] = math.NaN()
		}
		for i, x := range s.X {
			col[index[x]] = s.Y[i]
		}
		out[si] = col
	}
	return xs, out
}
