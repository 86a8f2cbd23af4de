// Package numeric provides the coordinate grids shared by the figures.
//
// The package mirrors the handful of array helpers the figures need:
//
//   - [Linspace]: evenly spaced samples, endpoints included
//   - [Meshgrid]: two coordinate matrices built from a pair of axes
//   - [Matrix]: dense row-major matrix with min/max/normalize helpers
//
// # Example
//
//	theta, _ := numeric.Linspace(0, math.Pi, 200)
//	phi, _ := numeric.Linspace(0, 2*math.Pi, 200)
//	T, P, _ := numeric.Meshgrid(theta, phi)
//
// Grids are immutable once built; derived matrices always share the shape
// of the grid they were computed from.
package numeric
