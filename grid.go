package medial

import (
	"math"
	"slices"

	"github.com/akmonengine/medial/geometry"
	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey is the coordinate of a cell on the projection plane
type CellKey struct {
	U, V int
}

// Cell holds the indices of the triangles overlapping it
type Cell struct {
	triangleIndices []int
}

// TriangleGrid is a uniform hashed grid of triangles projected on the plane
// perpendicular to a direction. A ray cast along that direction can only cross
// triangles registered in the cell of its origin.
type TriangleGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	tangentU mgl64.Vec3
	tangentV mgl64.Vec3
}

// NewTriangleGrid projects every triangle of m along direction and registers it
// in all the cells its projected bounding rectangle covers.
func NewTriangleGrid(m *mesh.Mesh, direction mgl64.Vec3) *TriangleGrid {
	numCells := nextPowerOfTwo(len(m.Triangles))

	cellSize := m.Bounds().Diagonal() / math.Sqrt(float64(numCells))
	if cellSize <= 0 {
		cellSize = 1
	}

	tangentU, tangentV := geometry.TangentBasis(direction.Normalize())
	tg := &TriangleGrid{
		cellSize: cellSize,
		cells:    make([]Cell, numCells),
		cellMask: numCells - 1,
		tangentU: tangentU,
		tangentV: tangentV,
	}

	for i, tri := range m.Triangles {
		a, b, c := m.Corners(tri)
		tg.Insert(i, a, b, c)
	}
	tg.SortCells()

	return tg
}

// nextPowerOfTwo rounds n up to a power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers a triangle in every cell covered by its projection
func (tg *TriangleGrid) Insert(triangleIndex int, a, b, c mgl64.Vec3) {
	pa, pb, pc := tg.project(a), tg.project(b), tg.project(c)

	// rounding must not drop a triangle touching the border of a cell
	pad := tg.cellSize * 1e-6
	minCell := tg.planeToCell(
		math.Min(pa[0], math.Min(pb[0], pc[0]))-pad,
		math.Min(pa[1], math.Min(pb[1], pc[1]))-pad,
	)
	maxCell := tg.planeToCell(
		math.Max(pa[0], math.Max(pb[0], pc[0]))+pad,
		math.Max(pa[1], math.Max(pb[1], pc[1]))+pad,
	)

	for u := minCell.U; u <= maxCell.U; u++ {
		for v := minCell.V; v <= maxCell.V; v++ {
			cellIdx := tg.hashCell(CellKey{u, v})
			tg.cells[cellIdx].triangleIndices = append(tg.cells[cellIdx].triangleIndices, triangleIndex)
		}
	}
}

// SortCells sorts each cell and removes duplicates: two cells of the same
// triangle may hash to the same slot, and a triangle counted twice flips the parity.
func (tg *TriangleGrid) SortCells() {
	for i := range tg.cells {
		if len(tg.cells[i].triangleIndices) > 1 {
			slices.Sort(tg.cells[i].triangleIndices)
			tg.cells[i].triangleIndices = slices.Compact(tg.cells[i].triangleIndices)
		}
	}
}

// Candidates returns the triangles that a ray cast from p may cross.
// The slice is shared, callers must not modify it.
func (tg *TriangleGrid) Candidates(p mgl64.Vec3) []int {
	pp := tg.project(p)
	return tg.cells[tg.hashCell(tg.planeToCell(pp[0], pp[1]))].triangleIndices
}

func (tg *TriangleGrid) project(p mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{p.Dot(tg.tangentU), p.Dot(tg.tangentV)}
}

// planeToCell converts plane coordinates to a cell coordinate
func (tg *TriangleGrid) planeToCell(u, v float64) CellKey {
	return CellKey{
		U: int(math.Floor(u / tg.cellSize)),
		V: int(math.Floor(v / tg.cellSize)),
	}
}

// hashCell maps a cell to its slot in the array
func (tg *TriangleGrid) hashCell(key CellKey) int {
	h := (key.U * 73856093) ^ (key.V * 19349663)
	return h & tg.cellMask
}
