// Package mesh is the read-only store of a closed triangulated surface:
// vertex positions and triangle index triples.
package mesh

import (
	"errors"
	"fmt"

	"github.com/akmonengine/medial/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Unassigned marks a vertex that is not registered anywhere, such as a transient midpoint.
const Unassigned = -1

var ErrInvalidIndex = errors.New("mesh: triangle references an invalid vertex index")

// Vertex is a point in 3D space with an optional normal.
// Index is its position in Mesh.Vertices for surface vertices, a synthetic index
// for derived points, or Unassigned.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3 // zero when unknown
	Index    int
}

// Triangle references three entries of Mesh.Vertices.
type Triangle struct {
	A, B, C int
}

// Mesh is a triangulated surface. It is never mutated once built.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// New builds a mesh from raw positions and index triples, checking that every
// index resolves to a vertex.
func New(positions []mgl64.Vec3, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{
		Vertices:  make([]Vertex, len(positions)),
		Triangles: make([]Triangle, 0, len(triangles)),
	}
	for i, p := range positions {
		m.Vertices[i] = Vertex{Position: p, Index: i}
	}

	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(positions) {
				return nil, fmt.Errorf("triangle %d: index %d out of [0, %d): %w", i, idx, len(positions), ErrInvalidIndex)
			}
		}
		m.Triangles = append(m.Triangles, Triangle{A: t[0], B: t[1], C: t[2]})
	}

	return m, nil
}

// Corners returns the positions of the triangle's three vertices.
func (m *Mesh) Corners(t Triangle) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	return m.Vertices[t.A].Position, m.Vertices[t.B].Position, m.Vertices[t.C].Position
}

// TriangleArea returns the area of the i-th triangle.
func (m *Mesh) TriangleArea(i int) float64 {
	a, b, c := m.Corners(m.Triangles[i])
	return geometry.TriangleArea(a, b, c)
}

// TriangleNormal returns the unit normal of the i-th triangle.
func (m *Mesh) TriangleNormal(i int) mgl64.Vec3 {
	a, b, c := m.Corners(m.Triangles[i])
	return geometry.TriangleNormal(a, b, c)
}

// SurfaceArea is the sum of all triangle areas.
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Triangles {
		total += m.TriangleArea(i)
	}
	return total
}

// Bounds returns the bounding box of all vertices. An empty mesh has a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}

	box := AABB{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		box = box.Extend(v.Position)
	}
	return box
}
