package medial

import (
	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// EstimateProbe translates p by offset along axis. With an outward axis and a
// negative offset the result is expected on the inner side of the local sheet.
// This is a rough estimate, no intersection with the surface is computed.
// A zero axis returns p unchanged.
func EstimateProbe(p mesh.Vertex, axis mgl64.Vec3, offset float64) mesh.Vertex {
	if axis.LenSqr() == 0 {
		return p
	}

	p.Position = p.Position.Add(axis.Normalize().Mul(offset))
	return p
}
