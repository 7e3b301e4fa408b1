package medial

import (
	"math"

	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// unitCube is the cube [0,1]^3, outward oriented
func unitCube() *mesh.Mesh {
	cube := mesh.NewCube(1)
	positions := make([]mgl64.Vec3, len(cube.Vertices))
	for i, v := range cube.Vertices {
		positions[i] = v.Position.Add(mgl64.Vec3{0.5, 0.5, 0.5})
	}
	triangles := make([][3]int, len(cube.Triangles))
	for i, t := range cube.Triangles {
		triangles[i] = [3]int{t.A, t.B, t.C}
	}

	m, err := mesh.New(positions, triangles)
	if err != nil {
		panic(err)
	}
	return m
}

// halfSpace contains every point with X below Limit
type halfSpace struct {
	Limit float64
	calls int
}

func (h *halfSpace) Contains(p mgl64.Vec3) bool {
	h.calls++
	return p.X() < h.Limit
}
