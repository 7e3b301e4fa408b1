package medial

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Containment selects the inside/outside test used by the solver.
type Containment int

const (
	// ContainmentParity counts ray crossings, odd = inside
	ContainmentParity Containment = iota
	// ContainmentWinding thresholds the generalized winding number
	ContainmentWinding
)

func (c Containment) String() string {
	switch c {
	case ContainmentParity:
		return "parity"
	case ContainmentWinding:
		return "winding"
	}
	return fmt.Sprintf("Containment(%d)", int(c))
}

// Config holds the magnitudes driving a transform.
type Config struct {
	SampleFraction float64    // fraction of the vertex count to sample
	SampleCount    int        // explicit number of samples, overrides SampleFraction when > 0
	ProbeOffset    float64    // signed distance of the probe along ProbeAxis; negative goes inward
	ProbeAxis      mgl64.Vec3 // fixed probe axis; zero uses each sample's outward surface normal
	SeedDistance   float64    // how far inward the far seed goes; 0 = mesh bounding box diagonal

	ConvergenceEpsilon float64 // bisection stops when the working points are closer than this
	IterationCap       int     // non-convergence guard
	RadiusDamping      float64 // radius correction factor, 1 = none

	Seed        uint64 // random source seed, equal seeds give equal samples
	Workers     int
	Containment Containment
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		SampleFraction:     0.25,
		ProbeOffset:        -0.05,
		ConvergenceEpsilon: 0.001,
		IterationCap:       100,
		RadiusDamping:      0.5,
		Seed:               1,
		Workers:            DEFAULT_WORKERS,
		Containment:        ContainmentParity,
	}
}

// Validate reports the first parameter out of its domain.
func (c Config) Validate() error {
	switch {
	case c.SampleFraction < 0:
		return fmt.Errorf("sample fraction %v is negative: %w", c.SampleFraction, ErrInvalidConfig)
	case c.SampleCount < 0:
		return fmt.Errorf("sample count %d is negative: %w", c.SampleCount, ErrInvalidConfig)
	case c.SeedDistance < 0:
		return fmt.Errorf("seed distance %v is negative: %w", c.SeedDistance, ErrInvalidConfig)
	case c.ConvergenceEpsilon <= 0:
		return fmt.Errorf("convergence epsilon %v must be positive: %w", c.ConvergenceEpsilon, ErrInvalidConfig)
	case c.IterationCap <= 0:
		return fmt.Errorf("iteration cap %d must be positive: %w", c.IterationCap, ErrInvalidConfig)
	case c.RadiusDamping <= 0:
		return fmt.Errorf("radius damping %v must be positive: %w", c.RadiusDamping, ErrInvalidConfig)
	case c.Containment != ContainmentParity && c.Containment != ContainmentWinding:
		return fmt.Errorf("unknown containment %v: %w", c.Containment, ErrInvalidConfig)
	}
	return nil
}

// sampleCount resolves how many points to draw on a mesh with vertexCount vertices.
func (c Config) sampleCount(vertexCount int) int {
	if c.SampleCount > 0 {
		return c.SampleCount
	}
	return int(c.SampleFraction * float64(vertexCount))
}
