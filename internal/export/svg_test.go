package export

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/figure"
	"github.com/san-kum/nucviz/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormed(t *testing.T, svg string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			return
		}
	}
}

func TestChartSVGFission(t *testing.T) {
	fig, err := figure.Fission(config.DefaultConfig())
	require.NoError(t, err)

	svg, err := SVG(fig, viz.Coolwarm)
	require.NoError(t, err)
	wellFormed(t, svg)

	assert.Contains(t, svg, `width="1000" height="600"`)
	assert.Contains(t, svg, "Stability Ratio (Z²/A)")
	assert.Contains(t, svg, "Z²/A = 35")
	assert.Contains(t, svg, `stroke-dasharray="6,4"`)
	assert.Equal(t, 4, strings.Count(svg, "<path "))
}

func TestChartSVGSeparation(t *testing.T) {
	fig, err := figure.Separation(config.DefaultConfig())
	require.NoError(t, err)

	svg, err := ChartSVG(fig, ChartWidth, ChartHeight)
	require.NoError(t, err)
	wellFormed(t, svg)

	assert.Contains(t, svg, "N=82 Shell Closure")
	assert.Contains(t, svg, "Data from AME2020 (Wang et al., 2021)")
	// 24 S_n circles plus one legend sample
	assert.Equal(t, 25, strings.Count(svg, "<circle "))
}

func TestSurfaceSVG(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Deformation.Points = 30
	fig, err := figure.Deformation(cfg)
	require.NoError(t, err)

	svg, err := SVG(fig, viz.Coolwarm)
	require.NoError(t, err)
	wellFormed(t, svg)
	assert.Contains(t, svg, `width="500" height="500"`)
	assert.Greater(t, strings.Count(svg, "<polygon "), 50)
	assert.NotContains(t, svg, "<text")

	_, err = ChartSVG(fig, ChartWidth, ChartHeight)
	assert.Error(t, err)
}

func TestWriteSVG(t *testing.T) {
	fig, err := figure.Fission(config.DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), fig.Stem+".svg")
	require.NoError(t, WriteSVG(path, fig, viz.Coolwarm))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
}

func TestChartSVGEscapes(t *testing.T) {
	fig := &figure.Figure{
		Name:  "esc",
		Title: "a < b & c",
		Series: []figure.Series{
			{Label: "<s>", X: []float64{0, 1}, Y: []float64{0, 1}, Color: figure.Blue},
		},
	}
	svg, err := ChartSVG(fig, 400, 300)
	require.NoError(t, err)
	wellFormed(t, svg)
	assert.Contains(t, svg, "a &lt; b &amp; c")
}
