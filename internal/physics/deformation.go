package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/nucviz/internal/numeric"
)

const (
	DefaultL      = 3
	DefaultM      = 0
	DefaultBeta   = 0.3
	DefaultR0     = 1.0
	DefaultPoints = 200
)

// ShapeParams describes a surface R(theta, phi) = R0 (1 + Beta Re Y_LM).
type ShapeParams struct {
	L      int
	M      int
	Beta   float64
	R0     float64
	Points int
}

func DefaultShapeParams() ShapeParams {
	return ShapeParams{
		L:      DefaultL,
		M:      DefaultM,
		Beta:   DefaultBeta,
		R0:     DefaultR0,
		Points: DefaultPoints,
	}
}

func (p ShapeParams) Validate() error {
	if err := ValidateMultipole(p.L, p.M); err != nil {
		return err
	}
	if p.R0 <= 0 || math.IsNaN(p.R0) {
		return fmt.Errorf("%w: r0=%g", ErrInvalidRadius, p.R0)
	}
	if p.Points < 2 {
		return fmt.Errorf("%w: points=%d", ErrGridTooSmall, p.Points)
	}
	return nil
}

// FileStem names output files after the deformation, e.g. "octupole_Y30".
func (p ShapeParams) FileStem() string {
	return fmt.Sprintf("%s_Y%d%d", MultipoleName(p.L), p.L, p.M)
}

func (p ShapeParams) GetParams() map[string]float64 {
	return map[string]float64{
		"l":      float64(p.L),
		"m":      float64(p.M),
		"beta":   p.Beta,
		"r0":     p.R0,
		"points": float64(p.Points),
	}
}

// SetParam updates a parameter by name. The result is not validated; call
// Validate before building a surface.
func (p *ShapeParams) SetParam(name string, value float64) error {
	switch name {
	case "l":
		p.L = int(math.Round(value))
	case "m":
		p.M = int(math.Round(value))
	case "beta":
		p.Beta = value
	case "r0":
		p.R0 = value
	case "points":
		p.Points = int(math.Round(value))
	default:
		return fmt.Errorf("unknown shape parameter: %s", name)
	}
	return nil
}

// Surface is a deformed nuclear surface sampled on a (phi, theta) grid.
// Every matrix has Points rows (phi) by Points columns (theta).
type Surface struct {
	Params   ShapeParams
	Theta    numeric.Matrix
	Phi      numeric.Matrix
	Harmonic numeric.Matrix
	Radius   numeric.Matrix
	X, Y, Z  numeric.Matrix
	// Color is Harmonic rescaled onto [0, 1] for colormap lookup.
	Color numeric.Matrix
}

func NewSurface(p ShapeParams) (*Surface, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	thetas, err := numeric.Linspace(0, math.Pi, p.Points)
	if err != nil {
		return nil, err
	}
	phis, err := numeric.Linspace(0, 2*math.Pi, p.Points)
	if err != nil {
		return nil, err
	}
	theta, phi, err := numeric.Meshgrid(thetas, phis)
	if err != nil {
		return nil, err
	}

	ylm, err := numeric.Zip(theta, phi, func(t, f float64) float64 {
		return RealHarmonic(p.L, p.M, t, f)
	})
	if err != nil {
		return nil, err
	}

	radius := ylm.Map(func(y float64) float64 { return p.R0 * (1 + p.Beta*y) })

	rows, cols := theta.Shape()
	x := numeric.NewMatrix(rows, cols)
	y := numeric.NewMatrix(rows, cols)
	z := numeric.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r, t, f := radius[i][j], theta[i][j], phi[i][j]
			st := math.Sin(t)
			x[i][j] = r * st * math.Cos(f)
			y[i][j] = r * st * math.Sin(f)
			z[i][j] = r * math.Cos(t)
		}
	}

	return &Surface{
		Params:   p,
		Theta:    theta,
		Phi:      phi,
		Harmonic: ylm,
		Radius:   radius,
		X:        x,
		Y:        y,
		Z:        z,
		Color:    ylm.Normalize(),
	}, nil
}

// Extent returns the smallest and largest sampled radius.
func (s *Surface) Extent() (float64, float64) {
	return s.Radius.Min(), s.Radius.Max()
}

// Point returns the Cartesian sample at grid position (i, j).
func (s *Surface) Point(i, j int) (float64, float64, float64) {
	return s.X[i][j], s.Y[i][j], s.Z[i][j]
}

func (s *Surface) Shape() (int, int) {
	return s.Radius.Shape()
}
