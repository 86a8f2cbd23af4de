// Package physics provides the nuclear-structure models behind the figures.
//
//   - [SphericalHarmonic]: Y_l^m with the Condon-Shortley phase
//   - [Surface]: a nucleus deformed by R0 (1 + beta Re Y_lm)
//   - [Coefficients]: SEMF surface and Coulomb terms for quadrupole
//     deformation energy
//   - [Table]: binding energies of an isotopic chain with one- and
//     two-neutron separation energies
//
// All models are closed-form and side-effect free. Tables embedded in the
// binary are parsed on each call to [TinTable] so callers never share
// mutable state.
//
// # Fission stability
//
// A sphere resists quadrupole deformation while Z^2/A stays below the
// critical ratio:
//
//	c := physics.DefaultCoefficients()
//	if !c.Stable(zz / a) {
//	    // deformation lowers the energy
//	}
package physics
