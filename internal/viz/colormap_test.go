package viz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColormapEnds(t *testing.T) {
	lo := Coolwarm.At(0)
	hi := Coolwarm.At(1)
	assert.InDelta(t, 0.230, lo.R, 1e-3)
	assert.InDelta(t, 0.754, lo.B, 1e-3)
	assert.InDelta(t, 0.706, hi.R, 1e-3)
	assert.InDelta(t, 0.150, hi.B, 1e-3)
}

func TestColormapClamp(t *testing.T) {
	assert.Equal(t, Viridis.Hex(0), Viridis.Hex(-3))
	assert.Equal(t, Viridis.Hex(1), Viridis.Hex(7))
	assert.Equal(t, Gray.Hex(0.5), Gray.Hex(math.NaN()))
}

func TestColormapMonotoneGray(t *testing.T) {
	prev := -1.0
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		c := Gray.At(v)
		assert.Greater(t, c.R, prev)
		prev = c.R
	}
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "viridis", GetTheme("viridis").Name)
	assert.Equal(t, "coolwarm", GetTheme("nope").Name)
	assert.Equal(t, []string{"coolwarm", "viridis", "gray"}, ThemeNames())
	assert.Equal(t, "coolwarm", nextTheme(ThemeMono).Name)
}
