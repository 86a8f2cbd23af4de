package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/nucviz/internal/figure"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

func sheetName(s string) string {
	s = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(s)
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	return s
}

func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// WriteXLSX writes each chart figure to its own data sheet, with a scatter
// chart sheet next to it and a facts sheet when the figure has any.
// Surface figures are skipped.
func WriteXLSX(path string, figs ...*figure.Figure) error {
	f := excelize.NewFile()
	defer f.Close()

	written := 0
	for _, fig := range figs {
		if fig.IsSurface() || len(fig.Series) == 0 {
			continue
		}
		if err := writeFigureSheet(f, fig, written == 0); err != nil {
			return fmt.Errorf("%s: %w", fig.Name, err)
		}
		written++
	}
	if written == 0 {
		return fmt.Errorf("no chart figures to export")
	}
	if err := f.SaveAs(path); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": path, "sheets": written}).Info("workbook written")
	return nil
}

func writeFigureSheet(f *excelize.File, fig *figure.Figure, first bool) error {
	sheet := sheetName(fig.Name)
	if first {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	xs, cols := fig.Aligned()
	head := []interface{}{fig.XLabel}
	for _, s := range fig.Series {
		head = append(head, s.Label)
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i, x := range xs {
		row := []interface{}{x}
		for _, col := range cols {
			row = append(row, cellValue(col[i]))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if err := addChartSheet(f, fig, sheet, len(xs)); err != nil {
		return err
	}
	if len(fig.Facts) > 0 {
		return writeFacts(f, fig, sheet)
	}
	return nil
}

func chartMarker(m figure.Marker) excelize.ChartMarker {
	switch m {
	case figure.MarkerCircle:
		return excelize.ChartMarker{Symbol: "circle", Size: 6}
	case figure.MarkerSquare:
		return excelize.ChartMarker{Symbol: "square", Size: 6}
	case figure.MarkerDiamond:
		return excelize.ChartMarker{Symbol: "diamond", Size: 6}
	}
	return excelize.ChartMarker{Symbol: "none"}
}

func addChartSheet(f *excelize.File, fig *figure.Figure, sheet string, rows int) error {
	last := rows + 1
	chart := &excelize.Chart{
		Type:   excelize.Scatter,
		Title:  []excelize.RichTextRun{{Text: fig.Title}},
		Legend: excelize.ChartLegend{Position: "top_right"},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: fig.XLabel}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: fig.YLabel}},
		},
		ShowBlanksAs: "gap",
	}
	if fig.XRange != nil {
		chart.XAxis.Minimum, chart.XAxis.Maximum = &fig.XRange.Min, &fig.XRange.Max
	}
	if fig.YRange != nil {
		chart.YAxis.Minimum, chart.YAxis.Maximum = &fig.YRange.Min, &fig.YRange.Max
	}
	for i, s := range fig.Series {
		col, _ := excelize.ColumnNumberToName(i + 2)
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, last),
			Line:       excelize.ChartLine{Width: math.Max(s.Width, 1)},
			Marker:     chartMarker(s.Marker),
			Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(s.Color.Hex, "#")}},
		})
	}
	return f.AddChartSheet(sheetName(sheet+"_chart"), chart)
}

func writeFacts(f *excelize.File, fig *figure.Figure, sheet string) error {
	name := sheetName(sheet + "_facts")
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, fact := range fig.Facts {
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+1), &[]interface{}{fact.Label, fact.Value}); err != nil {
			return err
		}
	}
	return nil
}
