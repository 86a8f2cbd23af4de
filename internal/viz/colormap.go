package viz

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps [0, 1] onto colours by blending evenly spaced stops in Lab.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

func NewColormap(name string, stops ...colorful.Color) Colormap {
	return Colormap{Name: name, stops: stops}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("colormap stop %q: %v", s, err))
	}
	return c
}

var (
	// Coolwarm is Moreland's diverging map, blue through grey to red.
	Coolwarm = NewColormap("coolwarm",
		colorful.Color{R: 0.230, G: 0.299, B: 0.754},
		colorful.Color{R: 0.865, G: 0.865, B: 0.865},
		colorful.Color{R: 0.706, G: 0.016, B: 0.150},
	)

	Viridis = NewColormap("viridis",
		mustHex("#440154"), mustHex("#3b528b"), mustHex("#21918c"), mustHex("#5ec962"), mustHex("#fde725"),
	)

	Gray = NewColormap("gray", mustHex("#303030"), mustHex("#f0f0f0"))
)

// At returns the colour for v, clamped to [0, 1]. NaN maps to the midpoint.
func (c Colormap) At(v float64) colorful.Color {
	if len(c.stops) == 0 {
		return colorful.Color{}
	}
	if len(c.stops) == 1 {
		return c.stops[0]
	}
	if math.IsNaN(v) {
		v = 0.5
	}
	v = math.Max(0, math.Min(1, v))

	pos := v * float64(len(c.stops)-1)
	i := int(pos)
	if i >= len(c.stops)-1 {
		return c.stops[len(c.stops)-1]
	}
	return c.stops[i].BlendLab(c.stops[i+1], pos-float64(i)).Clamped()
}

// Hex is a convenience for At(v).Hex().
func (c Colormap) Hex(v float64) string {
	return c.At(v).Hex()
}
