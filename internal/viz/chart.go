package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nucviz/internal/figure"
)

type ChartOptions struct {
	Width  int
	Height int
	Color  bool
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 80, Height: 15}
}

// RenderChart draws a 2D figure as an ASCII line chart. Values outside the
// figure's Y range are left out, horizontal guides become flat series, and
// vertical guides are listed under the chart.
func RenderChart(fig *figure.Figure, opts ChartOptions) (string, error) {
	if fig.IsSurface() {
		return "", fmt.Errorf("figure %s is a surface, not a chart", fig.Name)
	}
	if len(fig.Series) == 0 {
		return "", fmt.Errorf("figure %s has no series", fig.Name)
	}

	xs, cols := fig.Aligned()
	xr, yr := fig.Bounds()

	data := make([][]float64, 0, len(cols)+len(fig.Guides))
	legends := make([]string, 0, cap(data))
	colors := make([]asciigraph.AnsiColor, 0, cap(data))

	for i, col := range cols {
		clipped := make([]float64, 0, len(col))
		for k, v := range col {
			if !xr.Contains(xs[k]) {
				continue
			}
			if fig.YRange != nil && !fig.YRange.Contains(v) {
				v = math.NaN()
			}
			clipped = append(clipped, v)
		}
		data = append(data, clipped)
		legends = append(legends, fig.Series[i].Label)
		colors = append(colors, ansiColor(fig.Series[i].Color))
	}

	n := len(data[0])
	for _, g := range fig.Guides {
		if g.Orientation != figure.Horizontal || !yr.Contains(g.At) {
			continue
		}
		flat := make([]float64, n)
		for i := range flat {
			flat[i] = g.At
		}
		data = append(data, flat)
		label := g.Label
		if label == "" {
			label = fmt.Sprintf("y = %g", g.At)
		}
		legends = append(legends, label)
		colors = append(colors, ansiColor(g.Color))
	}

	if !hasFinite(data) {
		return "", fmt.Errorf("figure %s has no values inside its range", fig.Name)
	}

	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(fig.Title),
	}
	if fig.YRange != nil {
		options = append(options, asciigraph.LowerBound(fig.YRange.Min), asciigraph.UpperBound(fig.YRange.Max))
	}
	// asciigraph legends always carry ANSI escapes, so plain output lists
	// them separately.
	if opts.Color {
		options = append(options, asciigraph.SeriesColors(colors...), asciigraph.SeriesLegends(legends...))
	}

	var b strings.Builder
	b.WriteString(asciigraph.PlotMany(data, options...))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  x: %s [%g .. %g]\n", fig.XLabel, xr.Min, xr.Max)
	fmt.Fprintf(&b, "  y: %s\n", fig.YLabel)
	if fig.LegendTitle != "" {
		fmt.Fprintf(&b, "  legend: %s\n", fig.LegendTitle)
	}
	if !opts.Color {
		for _, l := range legends {
			fmt.Fprintf(&b, "  - %s\n", l)
		}
	}
	for _, g := range fig.Guides {
		if g.Orientation == figure.Vertical {
			fmt.Fprintf(&b, "  | %s at x = %g\n", g.Label, g.At)
		}
	}
	if fig.Note != "" {
		fmt.Fprintf(&b, "  [%s]\n", fig.Note)
	}
	return b.String(), nil
}

func ansiColor(c figure.Color) asciigraph.AnsiColor {
	if ac, ok := asciigraph.ColorNames[c.Name]; ok {
		return ac
	}
	return asciigraph.Default
}

func hasFinite(data [][]float64) bool {
	for _, s := range data {
		for _, v := range s {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// RenderSurface draws a surface figure onto a Braille canvas of w×h cells.
func RenderSurface(fig *figure.Figure, cam *Camera, w, h int, theme Theme, color bool) (string, error) {
	if !fig.IsSurface() {
		return "", fmt.Errorf("figure %s has no surface", fig.Name)
	}
	rows, _ := fig.Surface.Shape()
	mesh := NewMesh(fig.Surface, TerminalStride(rows, 24))
	if cam == nil {
		cam = NewCamera()
		cam.Fit(mesh.Radius)
	}

	c := NewCanvas(w, h)
	RenderMesh(c, mesh, cam)
	if color {
		return c.Render(theme.Colormap), nil
	}
	return c.String(), nil
}
