package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/nucviz/internal/figure"
)

// WriteCSV writes c with a header row. NaN cells are left empty.
func WriteCSV(w io.Writer, c *Columns) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.Names); err != nil {
		return err
	}
	row := make([]string, len(c.Names))
	for i := 0; i < c.Len(); i++ {
		for j, col := range c.Values {
			if math.IsNaN(col[i]) {
				row[j] = ""
				continue
			}
			row[j] = strconv.FormatFloat(col[i], 'g', 10, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type ExportData struct {
	ID      string                `json:"id"`
	Figure  string                `json:"figure"`
	Title   string                `json:"title"`
	Surface bool                  `json:"surface"`
	Facts   []figure.Fact         `json:"facts,omitempty"`
	Columns map[string][]*float64 `json:"columns"`
}

// ExportJSON writes an archived figure and its columns as indented JSON.
// Missing samples become null.
func ExportJSON(w io.Writer, meta *FigureMetadata, c *Columns) error {
	data := ExportData{
		ID:      meta.ID,
		Figure:  meta.Figure,
		Title:   meta.Title,
		Surface: meta.Surface,
		Facts:   meta.Facts,
		Columns: make(map[string][]*float64, len(c.Names)),
	}
	for j, name := range c.Names {
		col := make([]*float64, len(c.Values[j]))
		for i := range c.Values[j] {
			if v := c.Values[j][i]; !math.IsNaN(v) {
				col[i] = &v
			}
		}
		data.Columns[name] = col
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Chart rebuilds a chart figure from archived columns so it can be
// rendered or exported again.
func Chart(meta *FigureMetadata, c *Columns) *figure.Figure {
	fig := &figure.Figure{
		Name:   meta.Figure,
		Title:  meta.Title,
		XLabel: meta.XLabel,
		YLabel: meta.YLabel,
		Stem:   meta.Stem,
		Facts:  meta.Facts,
	}
	if meta.Surface || len(c.Names) < 2 {
		return fig
	}
	for j := 1; j < len(c.Names); j++ {
		var xs, ys []float64
		for i, y := range c.Values[j] {
			if math.IsNaN(y) {
				continue
			}
			xs = append(xs, c.Values[0][i])
			ys = append(ys, y)
		}
		fig.Series = append(fig.Series, figure.Series{
			Name:  c.Names[j],
			Label: c.Names[j],
			X:     xs,
			Y:     ys,
			Color: figure.CycleColor(j - 1),
		})
	}
	return fig
}
