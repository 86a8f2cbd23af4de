package physics

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestSphericalHarmonic_ClosedForms(t *testing.T) {
	angles := []struct{ theta, phi float64 }{
		{0.1, 0.0},
		{0.7, 1.3},
		{math.Pi / 2, 2.0},
		{2.9, 5.5},
	}

	forms := []struct {
		name string
		l, m int
		fn   func(theta, phi float64) complex128
	}{
		{"Y00", 0, 0, func(th, ph float64) complex128 {
			return complex(0.5/math.Sqrt(math.Pi), 0)
		}},
		{"Y10", 1, 0, func(th, ph float64) complex128 {
			return complex(math.Sqrt(3/(4*math.Pi))*math.Cos(th), 0)
		}},
		{"Y11", 1, 1, func(th, ph float64) complex128 {
			return complex(-math.Sqrt(3/(8*math.Pi))*math.Sin(th), 0) * cmplx.Exp(complex(0, ph))
		}},
		{"Y1-1", 1, -1, func(th, ph float64) complex128 {
			return complex(math.Sqrt(3/(8*math.Pi))*math.Sin(th), 0) * cmplx.Exp(complex(0, -ph))
		}},
		{"Y20", 2, 0, func(th, ph float64) complex128 {
			c := math.Cos(th)
			return complex(math.Sqrt(5/(16*math.Pi))*(3*c*c-1), 0)
		}},
		{"Y22", 2, 2, func(th, ph float64) complex128 {
			s := math.Sin(th)
			return complex(0.25*math.Sqrt(15/(2*math.Pi))*s*s, 0) * cmplx.Exp(complex(0, 2*ph))
		}},
		{"Y30", 3, 0, func(th, ph float64) complex128 {
			c := math.Cos(th)
			return complex(math.Sqrt(7/(16*math.Pi))*(5*c*c*c-3*c), 0)
		}},
	}

	for _, f := range forms {
		t.Run(f.name, func(t *testing.T) {
			for _, a := range angles {
				got := SphericalHarmonic(f.l, f.m, a.theta, a.phi)
				want := f.fn(a.theta, a.phi)
				if cmplx.Abs(got-want) > 1e-12 {
					t.Errorf("Y(%d,%d)(%.2f, %.2f) = %v, want %v", f.l, f.m, a.theta, a.phi, got, want)
				}
			}
		})
	}
}

func TestRealHarmonic(t *testing.T) {
	got := RealHarmonic(1, 1, math.Pi/2, math.Pi/3)
	want := -math.Sqrt(3/(8*math.Pi)) * math.Cos(math.Pi/3)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("RealHarmonic = %v, want %v", got, want)
	}
}

func TestValidateMultipole(t *testing.T) {
	tests := []struct {
		l, m  int
		valid bool
	}{
		{0, 0, true},
		{3, 0, true},
		{3, -3, true},
		{2, 3, false},
		{2, -3, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		err := ValidateMultipole(tt.l, tt.m)
		if tt.valid && err != nil {
			t.Errorf("l=%d m=%d: unexpected error %v", tt.l, tt.m, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidMultipole) {
			t.Errorf("l=%d m=%d: expected ErrInvalidMultipole, got %v", tt.l, tt.m, err)
		}
	}
}

func TestSphericalHarmonic_InvalidIsNaN(t *testing.T) {
	if !cmplx.IsNaN(SphericalHarmonic(1, 2, 0.3, 0.3)) {
		t.Error("expected NaN for |m| > l")
	}
}

func TestMultipoleName(t *testing.T) {
	tests := map[int]string{
		0: "monopole",
		2: "quadrupole",
		3: "octupole",
		4: "hexadecapole",
		6: "l6",
	}
	for l, want := range tests {
		if got := MultipoleName(l); got != want {
			t.Errorf("MultipoleName(%d) = %q, want %q", l, got, want)
		}
	}
}
