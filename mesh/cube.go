package mesh

import "github.com/go-gl/mathgl/mgl64"

// cubeFaces lists the 12 triangles of a cube, counter-clockwise seen from outside.
var cubeFaces = [][3]int{
	{0, 2, 1}, {0, 3, 2}, // -Z
	{4, 5, 6}, {4, 6, 7}, // +Z
	{0, 1, 5}, {0, 5, 4}, // -Y
	{2, 3, 7}, {2, 7, 6}, // +Y
	{1, 2, 6}, {1, 6, 5}, // +X
	{0, 4, 7}, {0, 7, 3}, // -X
}

// NewCube creates the 8-vertex, 12-triangle cube of the given side, centered at the origin.
func NewCube(side float64) *Mesh {
	h := side / 2
	positions := []mgl64.Vec3{
		{-h, -h, -h},
		{+h, -h, -h},
		{+h, +h, -h},
		{-h, +h, -h},
		{-h, -h, +h},
		{+h, -h, +h},
		{+h, +h, +h},
		{-h, +h, +h},
	}

	m, err := New(positions, cubeFaces)
	if err != nil {
		panic(err) // cubeFaces only references the 8 corners
	}
	return m
}
