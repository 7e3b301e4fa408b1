package medial

import "errors"

var (
	// ErrDegenerateMesh is returned when the mesh has no triangle or a zero surface area.
	ErrDegenerateMesh = errors.New("medial: degenerate mesh")
	// ErrNonConvergence is returned when the bisection exceeds its iteration cap.
	ErrNonConvergence = errors.New("medial: bisection did not converge")
	// ErrSeedsNotStraddling is returned when the solver seeds are not split
	// between the outside and the inside of the surface.
	ErrSeedsNotStraddling = errors.New("medial: seeds do not straddle the surface")
	ErrInvalidConfig      = errors.New("medial: invalid configuration")
)
