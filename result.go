package medial

import (
	"math"

	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SampleFailure records a sample whose ball could not be estimated.
type SampleFailure struct {
	Sample int // position in Result.Samples
	Err    error
}

// Result holds every collection produced by one transform, in sampling order.
// Balls has one entry per sample absent from Failures.
type Result struct {
	Samples  []mesh.Vertex
	Probes   []mesh.Vertex
	Balls    []Ball
	Failures []SampleFailure
}

// RadiusStats summarizes the radii of the balls.
type RadiusStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func (r *Result) Centers() []mgl64.Vec3 {
	centers := make([]mgl64.Vec3, len(r.Balls))
	for i, b := range r.Balls {
		centers[i] = b.Center.Position
	}
	return centers
}

func (r *Result) Radii() []float64 {
	radii := make([]float64, len(r.Balls))
	for i, b := range r.Balls {
		radii[i] = b.Radius
	}
	return radii
}

// RadiusStats returns zero stats when there is no ball. StdDev is 0 for a single ball.
func (r *Result) RadiusStats() RadiusStats {
	radii := r.Radii()
	if len(radii) == 0 {
		return RadiusStats{}
	}

	mean, std := stat.MeanStdDev(radii, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return RadiusStats{
		Count:  len(radii),
		Min:    floats.Min(radii),
		Max:    floats.Max(radii),
		Mean:   mean,
		StdDev: std,
	}
}
