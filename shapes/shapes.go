// Package shapes builds closed triangle meshes from signed distance functions,
// using the sdfx marching cubes renderer. The solids are centered at the origin.
package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/medial/mesh"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCells is the marching cubes resolution along the longest side of a solid.
const DefaultCells = 48

var ErrEmptyMesh = errors.New("shapes: marching cubes produced no triangle")

// Sphere creates a sphere of the given radius.
func Sphere(radius float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	return FromSDF(s, cells)
}

// Box creates a box with the given dimensions.
func Box(x, y, z float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return FromSDF(s, cells)
}

// Cylinder creates a cylinder along the Z axis.
func Cylinder(height, radius float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	return FromSDF(s, cells)
}

// Dumbbell creates two spheres joined by a cylinder along the Z axis.
// Its medial axis is the Z segment plus the two sphere centers.
func Dumbbell(sphereRadius, barLength, barRadius float64, cells int) (*mesh.Mesh, error) {
	if barRadius >= sphereRadius {
		return nil, fmt.Errorf("dumbbell: bar radius %v must be smaller than sphere radius %v", barRadius, sphereRadius)
	}

	ball, err := sdf.Sphere3D(sphereRadius)
	if err != nil {
		return nil, fmt.Errorf("dumbbell: %w", err)
	}
	bar, err := sdf.Cylinder3D(barLength, barRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("dumbbell: %w", err)
	}

	offset := barLength / 2
	top := sdf.Transform3D(ball, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: offset}))
	bottom := sdf.Transform3D(ball, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: -offset}))

	return FromSDF(sdf.Union3D(top, bottom, bar), cells)
}

// FromSDF tessellates s with marching cubes and welds the triangle soup into an
// indexed mesh. Triangles collapsed by the weld are dropped.
func FromSDF(s sdf.SDF3, cells int) (*mesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	bb := s.BoundingBox()
	longest := math.Max(bb.Max.X-bb.Min.X, math.Max(bb.Max.Y-bb.Min.Y, bb.Max.Z-bb.Min.Z))
	w := newWelder(longest * 1e-9)

	faces := make([][3]int, 0, len(triangles))
	for _, tri := range triangles {
		var face [3]int
		for j := 0; j < 3; j++ {
			face[j] = w.index(mgl64.Vec3{tri[j].X, tri[j].Y, tri[j].Z})
		}
		if face[0] == face[1] || face[1] == face[2] || face[2] == face[0] {
			continue
		}
		faces = append(faces, face)
	}
	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}

	return mesh.New(w.positions, faces)
}

// welder merges vertices closer than its tolerance, snapping them on a lattice.
type welder struct {
	tolerance float64
	lookup    map[[3]int64]int
	positions []mgl64.Vec3
}

func newWelder(tolerance float64) *welder {
	if tolerance <= 0 {
		tolerance = 1e-12
	}
	return &welder{tolerance: tolerance, lookup: make(map[[3]int64]int)}
}

func (w *welder) index(p mgl64.Vec3) int {
	key := [3]int64{
		int64(math.Round(p.X() / w.tolerance)),
		int64(math.Round(p.Y() / w.tolerance)),
		int64(math.Round(p.Z() / w.tolerance)),
	}
	if i, ok := w.lookup[key]; ok {
		return i
	}

	w.positions = append(w.positions, p)
	w.lookup[key] = len(w.positions) - 1
	return len(w.positions) - 1
}
