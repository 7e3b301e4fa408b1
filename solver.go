package medial

import (
	"fmt"

	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Ball is a maximal ball estimate.
type Ball struct {
	Center mesh.Vertex
	Radius float64
}

// SolveMaximalBall bisects the segment between a point outside the surface and a
// point inside it until both working points are closer than epsilon.
//
// Each step classifies the midpoint and replaces the working point of the same
// side, so the pair always straddles the surface. The converged inner point is
// the ball center, the radius is its distance to the inside seed.
//
// Returns:
//   - ErrSeedsNotStraddling if outside is not classified outside or inside not inside
//   - ErrNonConvergence if maxIterations bisections are not enough
//   - ErrInvalidConfig if epsilon or maxIterations is not positive
func SolveMaximalBall(outside, inside mgl64.Vec3, c Classifier, epsilon float64, maxIterations int) (Ball, error) {
	if epsilon <= 0 || maxIterations <= 0 {
		return Ball{}, fmt.Errorf("epsilon %v, max iterations %d: %w", epsilon, maxIterations, ErrInvalidConfig)
	}

	outsideIn, insideIn := c.Contains(outside), c.Contains(inside)
	if outsideIn || !insideIn {
		return Ball{}, fmt.Errorf("outside seed inside=%t, inside seed inside=%t: %w", outsideIn, insideIn, ErrSeedsNotStraddling)
	}

	out, in := outside, inside
	for i := 0; out.Sub(in).Len() >= epsilon; i++ {
		if i == maxIterations {
			return Ball{}, fmt.Errorf("gap %v after %d iterations: %w", out.Sub(in).Len(), maxIterations, ErrNonConvergence)
		}

		mid := out.Add(in).Mul(0.5)
		if c.Contains(mid) {
			in = mid
		} else {
			out = mid
		}
	}

	return Ball{
		Center: mesh.Vertex{Position: in, Index: mesh.Unassigned},
		Radius: inside.Sub(in).Len(),
	}, nil
}
