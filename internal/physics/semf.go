package physics

import (
	"fmt"
	"math"
)

// Typical SEMF coefficients in MeV.
const (
	DefaultSurfaceCoeff = 18.0
	DefaultCoulombCoeff = 0.72
	DefaultFixedMass    = 200
)

// DefaultRatios are the Z^2/A values drawn on the deformation-energy figure.
var DefaultRatios = []float64{15, 25, 35, 45}

// Coefficients holds the SEMF terms that respond to a quadrupole
// deformation. Volume, asymmetry and pairing terms are shape independent.
type Coefficients struct {
	Surface float64 `yaml:"surface"`
	Coulomb float64 `yaml:"coulomb"`
}

func DefaultCoefficients() Coefficients {
	return Coefficients{Surface: DefaultSurfaceCoeff, Coulomb: DefaultCoulombCoeff}
}

// Slope returns K in dE = K * alpha20^2:
//
//	K = A^(2/3) * (2/5 a_s - 1/5 a_c Z^2/A)
func (c Coefficients) Slope(mass, ratio float64) (float64, error) {
	if mass <= 0 || math.IsNaN(mass) {
		return 0, fmt.Errorf("%w: A=%g", ErrInvalidMass, mass)
	}
	return math.Pow(mass, 2.0/3.0) * (0.4*c.Surface - 0.2*c.Coulomb*ratio), nil
}

// DeformationEnergy is the SEMF energy change for deformation alpha20^2.
func (c Coefficients) DeformationEnergy(alpha2, mass, ratio float64) (float64, error) {
	k, err := c.Slope(mass, ratio)
	if err != nil {
		return 0, err
	}
	return k * alpha2, nil
}

// Curve evaluates the deformation energy over a grid of alpha20^2 values.
func (c Coefficients) Curve(mass, ratio float64, alpha2 []float64) ([]float64, error) {
	k, err := c.Slope(mass, ratio)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(alpha2))
	for i, a := range alpha2 {
		out[i] = k * a
	}
	return out, nil
}

// CriticalRatio is the Z^2/A at which the slope vanishes (2 a_s / a_c).
// Above it the sphere is unstable against quadrupole deformation.
func (c Coefficients) CriticalRatio() float64 {
	if c.Coulomb == 0 {
		return math.Inf(1)
	}
	return 2 * c.Surface / c.Coulomb
}

// Fissility is ratio / CriticalRatio.
func (c Coefficients) Fissility(ratio float64) float64 {
	return ratio / c.CriticalRatio()
}

// Stable reports whether a sphere with the given Z^2/A resists deformation.
func (c Coefficients) Stable(ratio float64) bool {
	return ratio < c.CriticalRatio()
}
