package medial

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/akmonengine/medial/geometry"
	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// inTriangle checks p is a convex combination of a, b, c: coplanar, and the three
// sub-triangles it forms add up to the whole area.
func inTriangle(p, a, b, c mgl64.Vec3, tolerance float64) bool {
	n := geometry.TriangleNormal(a, b, c)
	if math.Abs(p.Sub(a).Dot(n)) > tolerance {
		return false
	}
	total := geometry.TriangleArea(a, b, c)
	sum := geometry.TriangleArea(p, b, c) + geometry.TriangleArea(a, p, c) + geometry.TriangleArea(a, b, p)
	return math.Abs(sum-total) < tolerance
}

func TestSampleSingleTriangle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c mgl64.Vec3
	}{
		{"right triangle", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 4, 0}},
		{"tilted triangle", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"thin triangle", mgl64.Vec3{-5, 2, 1}, mgl64.Vec3{5, 2.1, 1}, mgl64.Vec3{0, 2, 1.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := mesh.New([]mgl64.Vec3{tt.a, tt.b, tt.c}, [][3]int{{0, 1, 2}})
			if err != nil {
				t.Fatal(err)
			}

			samples := Sample(m, 500, newRand(7))
			if len(samples) != 500 {
				t.Fatalf("len(Sample()) = %d, want 500", len(samples))
			}

			normal := geometry.TriangleNormal(tt.a, tt.b, tt.c)
			for i, s := range samples {
				if !inTriangle(s.Position, tt.a, tt.b, tt.c, 1e-9) {
					t.Errorf("sample %d at %v is outside its triangle", i, s.Position)
				}
				if s.Index != len(m.Vertices)+i {
					t.Errorf("sample %d has Index %d, want %d", i, s.Index, len(m.Vertices)+i)
				}
				if !vec3Equal(s.Normal, normal, 1e-12) {
					t.Errorf("sample %d has Normal %v, want %v", i, s.Normal, normal)
				}
			}
		})
	}
}

func TestSampleCubeSurface(t *testing.T) {
	cube := mesh.NewCube(2)

	samples := Sample(cube, 200, newRand(3))
	for i, s := range samples {
		p := s.Position
		extent := math.Max(math.Abs(p.X()), math.Max(math.Abs(p.Y()), math.Abs(p.Z())))
		if !floatEqual(extent, 1, 1e-12) {
			t.Errorf("sample %d at %v is not on the cube surface", i, p)
		}
		// the normal points out of the face holding the sample
		if !floatEqual(s.Normal.Dot(p), 1, 1e-12) {
			t.Errorf("sample %d at %v has normal %v", i, p, s.Normal)
		}
	}
}

func TestSampleAreaWeighted(t *testing.T) {
	// area 0.5 at z = 0, area 1.5 at z = 1
	positions := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0, 0, 1}, {3, 0, 1}, {0, 1, 1},
	}
	m, err := mesh.New(positions, [][3]int{{0, 1, 2}, {3, 4, 5}})
	if err != nil {
		t.Fatal(err)
	}

	const n = 8000
	samples := Sample(m, n, newRand(11))
	low := 0
	for _, s := range samples {
		if s.Position.Z() < 0.5 {
			low++
		}
	}

	ratio := float64(low) / n
	if !floatEqual(ratio, 0.25, 0.03) {
		t.Errorf("share of samples on the small triangle = %v, want about 0.25", ratio)
	}
}

func TestSampleDegenerate(t *testing.T) {
	collinear, err := mesh.New([]mgl64.Vec3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, [][3]int{{0, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	empty, err := mesh.New([]mgl64.Vec3{{0, 0, 0}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		mesh  *mesh.Mesh
		count int
	}{
		{"zero area", collinear, 10},
		{"no triangle", empty, 10},
		{"zero count", mesh.NewCube(1), 0},
		{"negative count", mesh.NewCube(1), -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := Sample(tt.mesh, tt.count, newRand(1))
			if samples == nil || len(samples) != 0 {
				t.Errorf("Sample() = %v, want an empty slice", samples)
			}
		})
	}
}

// zeroSource makes every rng.Float64() draw return exactly 0
type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func TestSampleSkipsLeadingZeroAreaTriangle(t *testing.T) {
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 0, 1}, {0, 1, 0}}
	m, err := mesh.New(positions, [][3]int{{0, 1, 2}, {0, 3, 4}})
	if err != nil {
		t.Fatal(err)
	}

	samples := Sample(m, 3, rand.New(zeroSource{}))
	if len(samples) != 3 {
		t.Fatalf("len(Sample()) = %d, want 3", len(samples))
	}
	for i, s := range samples {
		if !vec3Equal(s.Normal, mgl64.Vec3{-1, 0, 0}, 1e-12) {
			t.Errorf("sample %d has Normal %v, want the normal of the non-degenerate triangle", i, s.Normal)
		}
		if !inTriangle(s.Position, positions[0], positions[3], positions[4], 1e-12) {
			t.Errorf("sample %d at %v is not on the non-degenerate triangle", i, s.Position)
		}
	}
}

func TestSampleReproducible(t *testing.T) {
	cube := mesh.NewCube(2)
	first := Sample(cube, 20, newRand(42))
	second := Sample(cube, 20, newRand(42))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs between runs: %v != %v", i, first[i], second[i])
		}
	}
}

func TestEstimateProbe(t *testing.T) {
	sample := mesh.Vertex{Position: mgl64.Vec3{1, 2, 3}, Normal: mgl64.Vec3{0, 0, 1}, Index: 12}

	tests := []struct {
		name     string
		axis     mgl64.Vec3
		offset   float64
		expected mgl64.Vec3
	}{
		{"inward along z", mgl64.Vec3{0, 0, 1}, -0.05, mgl64.Vec3{1, 2, 2.95}},
		{"far seed along z", mgl64.Vec3{0, 0, 1}, -1.0, mgl64.Vec3{1, 2, 2}},
		{"unnormalized axis", mgl64.Vec3{0, 4, 0}, 0.5, mgl64.Vec3{1, 2.5, 3}},
		{"zero axis", mgl64.Vec3{}, -1.0, mgl64.Vec3{1, 2, 3}},
		{"zero offset", mgl64.Vec3{1, 0, 0}, 0, mgl64.Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := EstimateProbe(sample, tt.axis, tt.offset)
			if !vec3Equal(probe.Position, tt.expected, 1e-12) {
				t.Errorf("EstimateProbe() = %v, want %v", probe.Position, tt.expected)
			}
			if probe.Index != sample.Index || probe.Normal != sample.Normal {
				t.Errorf("EstimateProbe() changed identity: %+v", probe)
			}
		})
	}

	if sample.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("EstimateProbe() mutated its input: %v", sample.Position)
	}
}
