package medial

import (
	"fmt"
	"math/rand/v2"

	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Transformer approximates the medial axis of a closed mesh.
type Transformer struct {
	Mesh   *mesh.Mesh
	Config Config

	classifier   Classifier
	seedDistance float64
}

// NewTransformer validates cfg and prepares the classifier for m.
// The mesh is only read, by this call and by every Transform.
func NewTransformer(m *mesh.Mesh, cfg Config) (*Transformer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seedDistance := cfg.SeedDistance
	if seedDistance == 0 {
		seedDistance = m.Bounds().Diagonal()
	}

	return &Transformer{
		Mesh:         m,
		Config:       cfg,
		classifier:   NewClassifier(m, cfg.Containment),
		seedDistance: seedDistance,
	}, nil
}

// Classifier returns the containment test used by the solver.
func (t *Transformer) Classifier() Classifier {
	return t.classifier
}

// Transform runs the pipeline: sampling, probe estimation, then one bisection per
// probe. A sample whose bisection fails is reported in Result.Failures and skipped.
// Running it twice with the same Config.Seed gives the same Result.
func (t *Transformer) Transform() (*Result, error) {
	workers := max(DEFAULT_WORKERS, t.Config.Workers)
	result := &Result{
		Samples:  []mesh.Vertex{},
		Probes:   []mesh.Vertex{},
		Balls:    []Ball{},
		Failures: []SampleFailure{},
	}

	if len(t.Mesh.Triangles) == 0 || t.Mesh.SurfaceArea() <= 0 {
		Logger().Warn("degenerate mesh", "vertices", len(t.Mesh.Vertices), "triangles", len(t.Mesh.Triangles))
		return result, fmt.Errorf("%d triangles, area %v: %w", len(t.Mesh.Triangles), t.Mesh.SurfaceArea(), ErrDegenerateMesh)
	}

	// Phase 1: area weighted sampling
	rng := rand.New(rand.NewPCG(t.Config.Seed, t.Config.Seed^0x9e3779b97f4a7c15))
	result.Samples = Sample(t.Mesh, t.Config.sampleCount(len(t.Mesh.Vertices)), rng)

	// Phase 2: probes and far seeds, both along the same axis
	result.Probes = make([]mesh.Vertex, len(result.Samples))
	seeds := make([]mgl64.Vec3, len(result.Samples))
	for i, sample := range result.Samples {
		axis := t.probeAxis(sample)
		result.Probes[i] = EstimateProbe(sample, axis, t.Config.ProbeOffset)
		seeds[i] = EstimateProbe(sample, axis, -t.seedDistance).Position
	}

	// Phase 3: bisection, each sample only touches its own slot
	balls := make([]Ball, len(result.Samples))
	errs := make([]error, len(result.Samples))
	task(workers, len(result.Samples), func(i int) {
		ball, err := SolveMaximalBall(seeds[i], result.Probes[i].Position, t.classifier, t.Config.ConvergenceEpsilon, t.Config.IterationCap)
		if err != nil {
			errs[i] = err
			return
		}
		ball.Center.Index = result.Probes[i].Index
		ball.Radius *= t.Config.RadiusDamping
		balls[i] = ball
	})

	for i := range result.Samples {
		if errs[i] != nil {
			Logger().Debug("sample skipped", "sample", i, "position", result.Samples[i].Position, "err", errs[i])
			result.Failures = append(result.Failures, SampleFailure{Sample: i, Err: errs[i]})
			continue
		}
		result.Balls = append(result.Balls, balls[i])
	}

	Logger().Info("medial axis transform",
		"samples", len(result.Samples),
		"balls", len(result.Balls),
		"failures", len(result.Failures),
		"containment", t.Config.Containment.String(),
		"workers", workers,
	)

	return result, nil
}

// probeAxis is the configured fixed axis, or the outward normal of the sample.
func (t *Transformer) probeAxis(sample mesh.Vertex) mgl64.Vec3 {
	if t.Config.ProbeAxis.LenSqr() > 0 {
		return t.Config.ProbeAxis
	}
	return sample.Normal
}
