package physics

import "errors"

// Domain errors for the nuclear models.
var (
	// ErrInvalidMultipole indicates l < 0 or |m| > l.
	ErrInvalidMultipole = errors.New("physics: invalid multipole (need l >= 0 and |m| <= l)")

	// ErrInvalidRadius indicates a non-positive nominal radius.
	ErrInvalidRadius = errors.New("physics: nominal radius must be positive")

	// ErrGridTooSmall indicates an angular grid that cannot span a surface.
	ErrGridTooSmall = errors.New("physics: angular grid needs at least 2 points per axis")

	// ErrInvalidMass indicates a non-positive mass number.
	ErrInvalidMass = errors.New("physics: mass number must be positive")

	// ErrEmptyTable indicates a binding-energy table without entries.
	ErrEmptyTable = errors.New("physics: binding-energy table is empty")

	// ErrInvalidEntry indicates a malformed binding-energy table entry.
	ErrInvalidEntry = errors.New("physics: invalid binding-energy entry")
)
