package figure

import (
	"fmt"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/physics"
)

// Separation builds the one- and two-neutron separation energy chart for
// the configured isotopic chain.
func Separation(cfg *config.Config) (*Figure, error) {
	table, err := cfg.BindingTable()
	if err != nil {
		return nil, err
	}
	return SeparationFromTable(table, cfg.Separation)
}

func SeparationFromTable(table *physics.Table, sc config.SeparationConfig) (*Figure, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	sn := table.OneNeutron()
	s2n := table.TwoNeutron()

	fig := &Figure{
		Name:       "separation",
		Title:      fmt.Sprintf("Neutron Separation Energies in %s (Z=%d) Isotopes", table.Element, table.Z),
		XLabel:     "Mass Number (A)",
		YLabel:     "Separation Energy (MeV)",
		Note:       table.Source,
		Stem:       fmt.Sprintf("separation_%s", table.Element),
		MinorTicks: true,
	}

	x, y := physics.Split(sn)
	fig.Series = append(fig.Series, Series{
		Name: "sn", Label: "S_n (one-neutron)", X: x, Y: y, Color: Blue, Marker: MarkerCircle, Width: 1.5,
	})
	x, y = physics.Split(s2n)
	fig.Series = append(fig.Series, Series{
		Name: "s2n", Label: "S_2n (two-neutron)", X: x, Y: y, Color: Red, Marker: MarkerSquare, Width: 1.5,
	})
	if sc.Staggering {
		x, y = physics.Split(table.Staggering())
		fig.Series = append(fig.Series, Series{
			Name: "d3", Label: "Δ3 (odd-even)", X: x, Y: y, Color: Green, Marker: MarkerDiamond, Width: 1.5,
		})
	}

	if sc.ShellN > 0 {
		fig.Guides = append(fig.Guides, Guide{
			Orientation: Vertical,
			At:          float64(table.ShellClosureA(sc.ShellN)),
			Label:       fmt.Sprintf("N=%d Shell Closure", sc.ShellN),
			Color:       Black,
			Dashed:      true,
		})
	}

	as := table.MassNumbers()
	fig.Facts = []Fact{
		{"chain", fmt.Sprintf("%s Z=%d, A=%d..%d (%d entries)", table.Element, table.Z, as[0], as[len(as)-1], len(as))},
		{"S_n points", fmt.Sprintf("%d", len(sn))},
		{"S_2n points", fmt.Sprintf("%d", len(s2n))},
	}
	if sc.ShellN > 0 {
		fig.Facts = append(fig.Facts, Fact{"shell closure", fmt.Sprintf("N=%d → A=%d", sc.ShellN, table.ShellClosureA(sc.ShellN))})
	}
	return fig, nil
}
