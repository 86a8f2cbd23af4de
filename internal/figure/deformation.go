package figure

import (
	"fmt"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/physics"
)

// Deformation builds the 3D surface of a nucleus deformed by Re Y_lm.
func Deformation(cfg *config.Config) (*Figure, error) {
	p := cfg.ShapeParams()
	surf, err := physics.NewSurface(p)
	if err != nil {
		return nil, err
	}

	lo, hi := surf.Extent()
	return &Figure{
		Name:    "deformation",
		Title:   fmt.Sprintf("%s deformation Y%d%d, beta=%.2f", physics.MultipoleName(p.L), p.L, p.M, p.Beta),
		Stem:    p.FileStem(),
		Surface: surf,
		Facts: []Fact{
			{"multipole", fmt.Sprintf("l=%d m=%d (%s)", p.L, p.M, physics.MultipoleName(p.L))},
			{"beta", fmt.Sprintf("%.3f", p.Beta)},
			{"r0", fmt.Sprintf("%.3f", p.R0)},
			{"radius range", fmt.Sprintf("%.4f .. %.4f", lo, hi)},
			{"grid", fmt.Sprintf("%dx%d", p.Points, p.Points)},
		},
	}, nil
}
