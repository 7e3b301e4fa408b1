// Package geometry holds the pure functions the medial-axis pipeline builds on:
// triangle area, ray/triangle intersection and triangle solid angles.
//
// Every function works on raw mgl64.Vec3 values and never retains them.
//
// References:
//   - Möller, Trumbore: "Fast, Minimum Storage Ray/Triangle Intersection" (1997)
//   - Van Oosterom, Strackee: "The Solid Angle of a Plane Triangle" (1983)
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the threshold under which a ray is considered parallel to a triangle,
// and the minimum distance along the ray for a hit to count.
const Epsilon = 1e-7

// TriangleArea returns half the magnitude of the cross product of two edges.
// Degenerate triangles (collinear or coincident vertices) have an area of 0.
func TriangleArea(v1, v2, v3 mgl64.Vec3) float64 {
	return 0.5 * v2.Sub(v1).Cross(v3.Sub(v1)).Len()
}

// TriangleNormal returns the unit normal of the triangle, following the
// counter-clockwise winding v1 -> v2 -> v3. Degenerate triangles return the zero vector.
func TriangleNormal(v1, v2, v3 mgl64.Vec3) mgl64.Vec3 {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if n.LenSqr() < Epsilon*Epsilon {
		return mgl64.Vec3{}
	}

	return n.Normalize()
}

// RayTriangleIntersect performs the Möller–Trumbore test of the ray
// origin + t*direction against the triangle (v0, v1, v2).
//
// It returns true only when:
//   - the ray is not (nearly) parallel to the triangle plane
//   - the barycentric parameters satisfy u ∈ [0,1], v >= 0, u+v <= 1
//   - the hit lies strictly in front of the origin (t > Epsilon)
//
// Grazing hits on a nearly parallel triangle count as misses.
func RayTriangleIntersect(origin, direction, v0, v1, v2 mgl64.Vec3) bool {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -Epsilon && a < Epsilon {
		return false
	}

	f := 1.0 / a
	s := origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	t := f * edge2.Dot(q)
	return t > Epsilon
}

// SolidAngle returns the signed solid angle subtended by the triangle (v0, v1, v2)
// seen from p. The sign is positive when the triangle winds counter-clockwise
// seen from outside, i.e. when p lies behind its outward normal.
func SolidAngle(p, v0, v1, v2 mgl64.Vec3) float64 {
	a := v0.Sub(p)
	b := v1.Sub(p)
	c := v2.Sub(p)

	la, lb, lc := a.Len(), b.Len(), c.Len()
	if la == 0 || lb == 0 || lc == 0 {
		// p sits on a vertex
		return 0
	}

	numerator := a.Dot(b.Cross(c))
	denominator := la*lb*lc + a.Dot(b)*lc + b.Dot(c)*la + c.Dot(a)*lb

	return 2 * math.Atan2(numerator, denominator)
}

// TangentBasis returns two unit vectors spanning the plane perpendicular to normal.
// normal must be normalized.
func TangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}
