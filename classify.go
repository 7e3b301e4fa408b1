package medial

import (
	"math"

	"github.com/akmonengine/medial/geometry"
	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// RayDirection is the fixed direction of every containment ray.
// It is kept off the axes so that rays cast from the center of an axis-aligned
// face do not run along the diagonal shared by its two triangles.
var RayDirection = mgl64.Vec3{0.9, 0.31, 0.27}.Normalize()

// Classifier decides whether a point lies inside a closed surface.
// Implementations are read-only and safe for concurrent use.
type Classifier interface {
	Contains(p mgl64.Vec3) bool
}

// Classify casts a ray from p along RayDirection and counts the triangles of m it
// crosses: an odd count means p is inside. The result is only meaningful on a
// watertight mesh. Every triangle is tested, see ParityClassifier for repeated queries.
func Classify(p mgl64.Vec3, m *mesh.Mesh) bool {
	intersections := 0
	for _, tri := range m.Triangles {
		a, b, c := m.Corners(tri)
		if geometry.RayTriangleIntersect(p, RayDirection, a, b, c) {
			intersections++
		}
	}
	return intersections%2 == 1
}

// ParityClassifier applies the same parity rule as Classify, but only tests the
// triangles whose projection along RayDirection may cover the point.
type ParityClassifier struct {
	mesh   *mesh.Mesh
	bounds mesh.AABB
	grid   *TriangleGrid
}

func NewParityClassifier(m *mesh.Mesh) *ParityClassifier {
	return &ParityClassifier{
		mesh:   m,
		bounds: m.Bounds(),
		grid:   NewTriangleGrid(m, RayDirection),
	}
}

func (c *ParityClassifier) Contains(p mgl64.Vec3) bool {
	// a closed surface never encloses a point outside its bounding box
	if !c.bounds.ContainsPoint(p) {
		return false
	}

	intersections := 0
	for _, i := range c.grid.Candidates(p) {
		a, b, v := c.mesh.Corners(c.mesh.Triangles[i])
		if geometry.RayTriangleIntersect(p, RayDirection, a, b, v) {
			intersections++
		}
	}
	return intersections%2 == 1
}

// WindingClassifier thresholds the generalized winding number of the mesh.
// It does not depend on a ray direction, and tolerates small holes better than parity.
type WindingClassifier struct {
	mesh *mesh.Mesh
}

func NewWindingClassifier(m *mesh.Mesh) *WindingClassifier {
	return &WindingClassifier{mesh: m}
}

// WindingNumber returns the sum of the solid angles of every triangle seen from p,
// divided by 4π: about ±1 inside a closed surface, about 0 outside.
func (c *WindingClassifier) WindingNumber(p mgl64.Vec3) float64 {
	total := 0.0
	for _, tri := range c.mesh.Triangles {
		a, b, v := c.mesh.Corners(tri)
		total += geometry.SolidAngle(p, a, b, v)
	}
	return total / (4 * math.Pi)
}

// Contains ignores the mesh orientation: inward and outward wound surfaces agree.
func (c *WindingClassifier) Contains(p mgl64.Vec3) bool {
	return math.Abs(c.WindingNumber(p)) > 0.5
}

// NewClassifier builds the classifier selected by kind.
func NewClassifier(m *mesh.Mesh, kind Containment) Classifier {
	if kind == ContainmentWinding {
		return NewWindingClassifier(m)
	}
	return NewParityClassifier(m)
}
