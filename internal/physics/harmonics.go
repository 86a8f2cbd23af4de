package physics

import (
	"fmt"
	"math"
	"math/cmplx"
)

var multipoleNames = []string{"monopole", "dipole", "quadrupole", "octupole", "hexadecapole"}

// MultipoleName returns the conventional name of the order-l multipole.
func MultipoleName(l int) string {
	if l >= 0 && l < len(multipoleNames) {
		return multipoleNames[l]
	}
	return fmt.Sprintf("l%d", l)
}

// ValidateMultipole checks that (l, m) indexes a spherical harmonic.
func ValidateMultipole(l, m int) error {
	if l < 0 || m > l || m < -l {
		return fmt.Errorf("%w: l=%d m=%d", ErrInvalidMultipole, l, m)
	}
	return nil
}

// AssociatedLegendre evaluates P_l^m(x) for 0 <= m <= l, including the
// Condon-Shortley phase (-1)^m.
func AssociatedLegendre(l, m int, x float64) float64 {
	if m < 0 || m > l || math.Abs(x) > 1 {
		return math.NaN()
	}

	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}

	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}

	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}

// harmonicNorm is sqrt((2l+1)/(4pi) * (l-m)!/(l+m)!) for m >= 0.
func harmonicNorm(l, m int) float64 {
	ratio := 1.0
	for k := l - m + 1; k <= l+m; k++ {
		ratio /= float64(k)
	}
	return math.Sqrt(float64(2*l+1) / (4 * math.Pi) * ratio)
}

// SphericalHarmonic evaluates Y_l^m at polar angle theta and azimuth phi.
// Out-of-range (l, m) yields NaN; use ValidateMultipole first.
func SphericalHarmonic(l, m int, theta, phi float64) complex128 {
	if ValidateMultipole(l, m) != nil {
		return cmplx.NaN()
	}

	am := m
	if am < 0 {
		am = -m
	}
	mag := harmonicNorm(l, am) * AssociatedLegendre(l, am, math.Cos(theta))
	y := complex(mag, 0) * cmplx.Exp(complex(0, float64(am)*phi))

	if m < 0 {
		// Y_l^{-m} = (-1)^m conj(Y_l^m)
		y = cmplx.Conj(y)
		if am%2 == 1 {
			y = -y
		}
	}
	return y
}

// RealHarmonic returns Re Y_l^m(theta, phi).
func RealHarmonic(l, m int, theta, phi float64) float64 {
	return real(SphericalHarmonic(l, m, theta, phi))
}
