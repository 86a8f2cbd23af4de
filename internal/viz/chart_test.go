package viz

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChartPlain(t *testing.T) {
	fig, err := figure.Fission(config.DefaultConfig())
	require.NoError(t, err)

	out, err := RenderChart(fig, DefaultChartOptions())
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "  - Z²/A = 15")
	assert.Contains(t, out, "  - Z²/A = 45")
	assert.Contains(t, out, "legend: Stability Ratio (Z²/A)")
}

func TestRenderChartColor(t *testing.T) {
	fig, err := figure.Separation(config.DefaultConfig())
	require.NoError(t, err)

	opts := DefaultChartOptions()
	opts.Color = true
	out, err := RenderChart(fig, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "N=82 Shell Closure at x = 132")
	assert.Contains(t, out, "AME2020")
}

func TestRenderChartRejectsSurface(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Deformation.Points = 20
	fig, err := figure.Deformation(cfg)
	require.NoError(t, err)

	_, err = RenderChart(fig, DefaultChartOptions())
	assert.Error(t, err)

	out, err := RenderSurface(fig, nil, 30, 15, ThemeCoolwarm, false)
	require.NoError(t, err)
	assert.Equal(t, 15, strings.Count(out, "\n"))
}

func TestRenderFacts(t *testing.T) {
	fig, err := figure.Fission(config.DefaultConfig())
	require.NoError(t, err)
	out := RenderFacts(fig, false)
	assert.Contains(t, out, "critical Z²/A")
	assert.Contains(t, out, "50.00")
	assert.Empty(t, RenderFacts(&figure.Figure{Name: "empty"}, false))
}

func TestRequireTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.ErrorIs(t, RequireTerminal(f), ErrNoTerminal)
}

func TestGuardDisplay(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	assert.False(t, GuardDisplay(f, &buf, "use --out <file>.svg"))
	assert.Contains(t, buf.String(), "no terminal detected")
	assert.Contains(t, buf.String(), "use --out <file>.svg")
}
