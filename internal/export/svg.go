package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/nucviz/internal/figure"
	"github.com/san-kum/nucviz/internal/viz"
	log "github.com/sirupsen/logrus"
)

// Canvas sizes in pixels, one inch per 100px.
const (
	ChartWidth    = 1000
	ChartHeight   = 600
	SurfaceWidth  = 500
	SurfaceHeight = 500
	// SurfaceStride samples every second grid line of the surface.
	SurfaceStride = 2
)

const (
	marginLeft   = 90
	marginRight  = 30
	marginTop    = 60
	marginBottom = 70
	fontFamily   = "DejaVu Sans, Helvetica, Arial, sans-serif"
)

// SVG renders fig at its natural size. Surfaces are coloured through cmap.
func SVG(fig *figure.Figure, cmap viz.Colormap) (string, error) {
	if fig.IsSurface() {
		return SurfaceSVG(fig, SurfaceWidth, SurfaceHeight, cmap)
	}
	return ChartSVG(fig, ChartWidth, ChartHeight)
}

// WriteSVG renders fig and writes it to path.
func WriteSVG(path string, fig *figure.Figure, cmap viz.Colormap) error {
	svg, err := SVG(fig, cmap)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.WithFields(log.Fields{"figure": fig.Name, "path": path, "bytes": len(svg)}).Info("svg written")
	return nil
}

func header(sb *strings.Builder, width, height int) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="%s">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height, fontFamily)
}

// SurfaceSVG draws the camera-facing patches of a surface figure back to
// front, each filled from cmap. Axes are hidden.
func SurfaceSVG(fig *figure.Figure, width, height int, cmap viz.Colormap) (string, error) {
	if !fig.IsSurface() {
		return "", fmt.Errorf("figure %s has no surface", fig.Name)
	}
	mesh := viz.NewMesh(fig.Surface, SurfaceStride)
	cam := viz.NewCamera()
	cam.Fit(mesh.Radius)

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(`<g stroke-width="0.6" stroke-linejoin="round">` + "\n")
	for _, q := range mesh.Project(cam, width, height) {
		c := cmap.Hex(q.Tone)
		fmt.Fprintf(&sb, `<polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s" stroke="%s"/>`+"\n",
			q.X[0], q.Y[0], q.X[1], q.Y[1], q.X[2], q.Y[2], q.X[3], q.Y[3], c, c)
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String(), nil
}

// plotArea maps data coordinates into the pixel rectangle of the axes.
type plotArea struct {
	x0, y0, w, h float64
	xr, yr       figure.Range
}

func (p plotArea) X(v float64) float64 {
	if p.xr.Span() == 0 {
		return p.x0 + p.w/2
	}
	return p.x0 + (v-p.xr.Min)/p.xr.Span()*p.w
}

func (p plotArea) Y(v float64) float64 {
	if p.yr.Span() == 0 {
		return p.y0 + p.h/2
	}
	return p.y0 + p.h - (v-p.yr.Min)/p.yr.Span()*p.h
}

// ChartSVG draws a 2D figure: dotted grid, ticks, series with markers,
// guide lines, legend and note box.
func ChartSVG(fig *figure.Figure, width, height int) (string, error) {
	if fig.IsSurface() {
		return "", fmt.Errorf("figure %s is a surface, not a chart", fig.Name)
	}
	if len(fig.Series) == 0 {
		return "", fmt.Errorf("figure %s has no series", fig.Name)
	}

	xr, yr := fig.Bounds()
	pa := plotArea{
		x0: marginLeft,
		y0: marginTop,
		w:  float64(width - marginLeft - marginRight),
		h:  float64(height - marginTop - marginBottom),
		xr: xr,
		yr: yr,
	}

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, `<defs><clipPath id="plot"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/></clipPath></defs>`+"\n",
		pa.x0, pa.y0, pa.w, pa.h)

	writeAxes(&sb, fig, pa)

	sb.WriteString(`<g clip-path="url(#plot)">` + "\n")
	for _, g := range fig.Guides {
		writeGuide(&sb, g, pa)
	}
	for _, s := range fig.Series {
		writeSeries(&sb, s, pa)
	}
	sb.WriteString("</g>\n")

	writeLegend(&sb, fig, pa)
	if fig.Note != "" {
		writeNote(&sb, fig.Note, pa)
	}

	fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="16" text-anchor="middle">%s</text>`+"\n",
		pa.x0+pa.w/2, marginTop/2+4, html.EscapeString(fig.Title))
	fmt.Fprintf(&sb, `<text x="%.1f" y="%d" font-size="14" text-anchor="middle">%s</text>`+"\n",
		pa.x0+pa.w/2, height-18, html.EscapeString(fig.XLabel))
	fmt.Fprintf(&sb, `<text transform="translate(22,%.1f) rotate(-90)" font-size="14" text-anchor="middle">%s</text>`+"\n",
		pa.y0+pa.h/2, html.EscapeString(fig.YLabel))

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

func writeAxes(sb *strings.Builder, fig *figure.Figure, pa plotArea) {
	xt, xstep := Ticks(pa.xr, 8)
	yt, ystep := Ticks(pa.yr, 8)
	bottom := pa.y0 + pa.h

	sb.WriteString(`<g stroke="#b0b0b0" stroke-width="0.8" stroke-dasharray="1,3" opacity="0.7">` + "\n")
	for _, v := range xt {
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.X(v), pa.y0, pa.X(v), bottom)
	}
	for _, v := range yt {
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.x0, pa.Y(v), pa.x0+pa.w, pa.Y(v))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g stroke="#000000" stroke-width="0.8">` + "\n")
	for _, v := range xt {
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.X(v), bottom, pa.X(v), bottom+6)
	}
	for _, v := range yt {
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.x0-6, pa.Y(v), pa.x0, pa.Y(v))
	}
	if fig.MinorTicks {
		for _, v := range MinorTicks(pa.xr, xstep) {
			fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.X(v), bottom, pa.X(v), bottom+3)
		}
		for _, v := range MinorTicks(pa.yr, ystep) {
			fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", pa.x0-3, pa.Y(v), pa.x0, pa.Y(v))
		}
	}
	sb.WriteString("</g>\n")

	fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000" stroke-width="0.8"/>`+"\n",
		pa.x0, pa.y0, pa.w, pa.h)

	sb.WriteString(`<g font-size="12">` + "\n")
	for _, v := range xt {
		fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" text-anchor="middle">%s</text>`+"\n", pa.X(v), bottom+20, FormatTick(v, xstep))
	}
	for _, v := range yt {
		fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" text-anchor="end">%s</text>`+"\n", pa.x0-9, pa.Y(v)+4, FormatTick(v, ystep))
	}
	sb.WriteString("</g>\n")
}

func dash(dashed bool) string {
	if dashed {
		return ` stroke-dasharray="6,4"`
	}
	return ""
}

func writeGuide(sb *strings.Builder, g figure.Guide, pa plotArea) {
	x1, y1, x2, y2 := pa.x0, pa.Y(g.At), pa.x0+pa.w, pa.Y(g.At)
	if g.Orientation == figure.Vertical {
		x1, y1, x2, y2 = pa.X(g.At), pa.y0, pa.X(g.At), pa.y0+pa.h
	}
	fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"%s/>`+"\n",
		x1, y1, x2, y2, g.Color.Hex, dash(g.Dashed))
}

func writeSeries(sb *strings.Builder, s figure.Series, pa plotArea) {
	width := s.Width
	if width <= 0 {
		width = 1.5
	}
	var d strings.Builder
	pen := false
	for i := range s.X {
		if math.IsNaN(s.Y[i]) || math.IsInf(s.Y[i], 0) {
			pen = false
			continue
		}
		cmd := "L"
		if !pen {
			cmd = "M"
			pen = true
		}
		fmt.Fprintf(&d, "%s%.2f,%.2f ", cmd, pa.X(s.X[i]), pa.Y(s.Y[i]))
	}
	fmt.Fprintf(sb, `<path d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linejoin="round"/>`+"\n",
		strings.TrimSpace(d.String()), s.Color.Hex, width)
	for i := range s.X {
		if math.IsNaN(s.Y[i]) {
			continue
		}
		writeMarker(sb, s.Marker, pa.X(s.X[i]), pa.Y(s.Y[i]), s.Color.Hex)
	}
}

func writeMarker(sb *strings.Builder, m figure.Marker, x, y float64, color string) {
	const r = 4.0
	switch m {
	case figure.MarkerCircle:
		fmt.Fprintf(sb, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n", x, y, r, color)
	case figure.MarkerSquare:
		fmt.Fprintf(sb, `<rect x="%.2f" y="%.2f" width="%.1f" height="%.1f" fill="%s"/>`+"\n", x-r, y-r, 2*r, 2*r, color)
	case figure.MarkerDiamond:
		fmt.Fprintf(sb, `<polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
			x, y-r-1, x+r, y, x, y+r+1, x-r, y, color)
	}
}

type legendEntry struct {
	label  string
	color  string
	marker figure.Marker
	dashed bool
}

func legendEntries(fig *figure.Figure) []legendEntry {
	var out []legendEntry
	for _, s := range fig.Series {
		if s.Label == "" {
			continue
		}
		out = append(out, legendEntry{s.Label, s.Color.Hex, s.Marker, false})
	}
	for _, g := range fig.Guides {
		if g.Label == "" {
			continue
		}
		out = append(out, legendEntry{g.Label, g.Color.Hex, figure.MarkerNone, g.Dashed})
	}
	return out
}

// textWidth estimates rendered width at a given font size.
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

func writeLegend(sb *strings.Builder, fig *figure.Figure, pa plotArea) {
	entries := legendEntries(fig)
	if len(entries) == 0 {
		return
	}
	const (
		lineH  = 20.0
		sample = 28.0
		pad    = 8.0
		font   = 12.0
	)
	w := textWidth(fig.LegendTitle, font)
	for _, e := range entries {
		w = math.Max(w, sample+8+textWidth(e.label, font))
	}
	w += 2 * pad
	rows := float64(len(entries))
	if fig.LegendTitle != "" {
		rows++
	}
	h := rows*lineH + pad

	x := pa.x0 + pa.w - w - 10
	y := pa.y0 + 10
	fmt.Fprintf(sb, `<g font-size="%.0f">`+"\n", font)
	fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="#ffffff" fill-opacity="0.8" stroke="#cccccc"/>`+"\n",
		x, y, w, h)
	cy := y + pad/2
	if fig.LegendTitle != "" {
		cy += lineH
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n", x+w/2, cy-5, html.EscapeString(fig.LegendTitle))
	}
	for _, e := range entries {
		cy += lineH
		my := cy - lineH/2 + 1
		fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"%s/>`+"\n",
			x+pad, my, x+pad+sample, my, e.color, dash(e.dashed))
		writeMarker(sb, e.marker, x+pad+sample/2, my, e.color)
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f">%s</text>`+"\n", x+pad+sample+8, my+4, html.EscapeString(e.label))
	}
	sb.WriteString("</g>\n")
}

// writeNote boxes text in the lower-left corner of the axes.
func writeNote(sb *strings.Builder, note string, pa plotArea) {
	const font = 10.0
	w := textWidth(note, font) + 8
	h := font + 8
	x := pa.x0 + 0.02*pa.w
	y := pa.y0 + pa.h - 0.02*pa.h - h
	fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="#ffffff" fill-opacity="0.5" stroke="#000000" stroke-opacity="0.5"/>`+"\n",
		x, y, w, h)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n", x+4, y+h-5, font, html.EscapeString(note))
}
