package figure

import (
	"fmt"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/numeric"
)

// Fission builds the SEMF deformation-energy curves dE(alpha20^2), one per
// Z^2/A ratio, at a fixed mass number.
func Fission(cfg *config.Config) (*Figure, error) {
	fc := cfg.Fission
	coeff := cfg.Coefficients()

	alpha2, err := numeric.Linspace(0, fc.Alpha2Max, fc.Points)
	if err != nil {
		return nil, err
	}

	fig := &Figure{
		Name:        "fission",
		Title:       fmt.Sprintf("Deformation Energy (ΔE) vs. Quadrupole Deformation (α20²) for Fixed A = %g", fc.Mass),
		XLabel:      "Quadrupole Deformation Parameter Squared (α20²)",
		YLabel:      "Deformation Energy (ΔE) [MeV]",
		LegendTitle: "Stability Ratio (Z²/A)",
		Stem:        fmt.Sprintf("deformation_energy_A%g", fc.Mass),
		XRange:      &Range{0, fc.Alpha2Max},
		YRange:      &Range{fc.YMin, fc.YMax},
		Guides: []Guide{
			{Orientation: Horizontal, At: 0, Color: Gray, Dashed: true},
		},
	}

	for i, ratio := range fc.Ratios {
		energy, err := coeff.Curve(fc.Mass, ratio, alpha2)
		if err != nil {
			return nil, err
		}
		fig.Series = append(fig.Series, Series{
			Name:  fmt.Sprintf("ratio_%g", ratio),
			Label: fmt.Sprintf("Z²/A = %g", ratio),
			X:     alpha2,
			Y:     energy,
			Color: CycleColor(i),
			Width: 2,
		})
	}

	fig.Facts = append(fig.Facts, Fact{"critical Z²/A", fmt.Sprintf("%.2f", coeff.CriticalRatio())})
	for _, ratio := range fc.Ratios {
		k, err := coeff.Slope(fc.Mass, ratio)
		if err != nil {
			return nil, err
		}
		verdict := "stable sphere"
		if !coeff.Stable(ratio) {
			verdict = "favours deformation"
		}
		fig.Facts = append(fig.Facts, Fact{
			Label: fmt.Sprintf("Z²/A = %g", ratio),
			Value: fmt.Sprintf("K = %+.3f MeV, x = %.2f, %s", k, coeff.Fissility(ratio), verdict),
		})
	}
	return fig, nil
}
