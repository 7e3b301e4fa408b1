package medial

import (
	"math/rand/v2"
	"sort"

	"github.com/akmonengine/medial/mesh"
)

// Sample draws count points on the surface of m, each triangle being picked with
// a probability proportional to its area, then a point uniformly inside it.
//
// Each sample carries the unit normal of its source triangle and the synthetic
// index len(m.Vertices) + its rank. A mesh without area yields no sample.
func Sample(m *mesh.Mesh, count int, rng *rand.Rand) []mesh.Vertex {
	if count <= 0 || len(m.Triangles) == 0 {
		return []mesh.Vertex{}
	}

	// accumulated[i] is the area of triangles [0, i]
	accumulated := make([]float64, len(m.Triangles))
	totalArea := 0.0
	for i := range m.Triangles {
		totalArea += m.TriangleArea(i)
		accumulated[i] = totalArea
	}
	if totalArea <= 0 {
		return []mesh.Vertex{}
	}

	samples := make([]mesh.Vertex, 0, count)
	for range count {
		r := rng.Float64() * totalArea
		// first triangle whose accumulated area exceeds the draw, so that a
		// zero-area triangle is never selected
		selected := sort.Search(len(accumulated), func(i int) bool { return accumulated[i] > r })
		if selected >= len(accumulated) {
			continue
		}

		u := rng.Float64()
		v := rng.Float64()
		if u+v > 1.0 {
			u = 1.0 - u
			v = 1.0 - v
		}
		w := 1.0 - u - v

		a, b, c := m.Corners(m.Triangles[selected])
		samples = append(samples, mesh.Vertex{
			Position: a.Mul(u).Add(b.Mul(v)).Add(c.Mul(w)),
			Normal:   m.TriangleNormal(selected),
			Index:    len(m.Vertices) + len(samples),
		})
	}

	return samples
}
