package medial

import (
	"math"
	"testing"

	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func TestClassifyCube(t *testing.T) {
	cube := mesh.NewCube(2)

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"centroid", mgl64.Vec3{0, 0, 0}, true},
		{"near a corner", mgl64.Vec3{0.9, -0.9, 0.9}, true},
		{"just under the top face", mgl64.Vec3{0, 0, 0.99}, true},
		{"far outside", mgl64.Vec3{100, 100, 100}, false},
		{"beyond +X", mgl64.Vec3{1.5, 0, 0}, false},
		{"beyond -X, ray crosses the cube", mgl64.Vec3{-1.5, 0, 0}, false},
		{"below, ray misses", mgl64.Vec3{0, 0, -1.5}, false},
	}

	parity := NewParityClassifier(cube)
	winding := NewWindingClassifier(cube)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.point, cube); got != tt.expected {
				t.Errorf("Classify(%v) = %v, want %v", tt.point, got, tt.expected)
			}
			if got := parity.Contains(tt.point); got != tt.expected {
				t.Errorf("ParityClassifier.Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
			if got := winding.Contains(tt.point); got != tt.expected {
				t.Errorf("WindingClassifier.Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestClassifyUnitCube(t *testing.T) {
	cube := unitCube()

	if !Classify(mgl64.Vec3{0.5, 0.5, 0.5}, cube) {
		t.Error("centroid of the unit cube should classify inside")
	}
	if Classify(mgl64.Vec3{100, 100, 100}, cube) {
		t.Error("(100, 100, 100) should classify outside")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	cube := mesh.NewCube(2)
	parity := NewParityClassifier(cube)
	points := []mgl64.Vec3{{0, 0, 0}, {0.3, 0.7, -0.2}, {3, 0, 0}, {-1.5, 0.2, 0.1}}

	for _, p := range points {
		first := Classify(p, cube)
		for range 5 {
			if Classify(p, cube) != first || parity.Contains(p) != first {
				t.Fatalf("classification of %v changed between calls", p)
			}
		}
	}
}

func TestClassifiersAgree(t *testing.T) {
	cube := mesh.NewCube(2)
	parity := NewParityClassifier(cube)
	winding := NewWindingClassifier(cube)
	rng := newRand(5)

	for i := 0; i < 2000; i++ {
		p := mgl64.Vec3{rng.Float64()*4 - 2, rng.Float64()*4 - 2, rng.Float64()*4 - 2}
		expected := max(math.Abs(p.X()), math.Abs(p.Y()), math.Abs(p.Z())) < 1

		if got := Classify(p, cube); got != expected {
			t.Errorf("Classify(%v) = %v, want %v", p, got, expected)
		}
		if got := parity.Contains(p); got != expected {
			t.Errorf("ParityClassifier.Contains(%v) = %v, want %v", p, got, expected)
		}
		if got := winding.Contains(p); got != expected {
			t.Errorf("WindingClassifier.Contains(%v) = %v, want %v", p, got, expected)
		}
	}
}

func TestWindingNumber(t *testing.T) {
	cube := mesh.NewCube(2)
	winding := NewWindingClassifier(cube)

	if w := winding.WindingNumber(mgl64.Vec3{0.2, 0.1, -0.3}); !floatEqual(w, 1, 1e-9) {
		t.Errorf("WindingNumber(inside) = %v, want 1", w)
	}
	if w := winding.WindingNumber(mgl64.Vec3{5, 0, 0}); !floatEqual(w, 0, 1e-9) {
		t.Errorf("WindingNumber(outside) = %v, want 0", w)
	}
}

func TestNewClassifier(t *testing.T) {
	cube := mesh.NewCube(2)

	if _, ok := NewClassifier(cube, ContainmentParity).(*ParityClassifier); !ok {
		t.Error("NewClassifier(ContainmentParity) should return a *ParityClassifier")
	}
	if _, ok := NewClassifier(cube, ContainmentWinding).(*WindingClassifier); !ok {
		t.Error("NewClassifier(ContainmentWinding) should return a *WindingClassifier")
	}
}
