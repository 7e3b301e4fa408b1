package main

import (
	"fmt"
	"log"

	"github.com/akmonengine/medial"
	"github.com/akmonengine/medial/mesh"
	"github.com/akmonengine/medial/shapes"
)

// StepDebugger instruments the phases of a transform
type StepDebugger interface {
	DebugSample(i int, sample, probe mesh.Vertex)
	DebugBisection(i int, outside, inside mesh.Vertex, ball medial.Ball, err error)
}

// SimpleDebugger prints every phase
type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugSample(i int, sample, probe mesh.Vertex) {
	fmt.Printf("🔍 Sample %d:\n", i)
	fmt.Printf("   Position: %v\n", sample.Position)
	fmt.Printf("   Normal: %v\n", sample.Normal)
	fmt.Printf("   Probe: %v (index %d)\n", probe.Position, probe.Index)
}

func (d *SimpleDebugger) DebugBisection(i int, outside, inside mesh.Vertex, ball medial.Ball, err error) {
	fmt.Printf("🔧 Bisection %d:\n", i)
	fmt.Printf("   Outside seed: %v\n", outside.Position)
	fmt.Printf("   Inside seed: %v\n", inside.Position)
	if err != nil {
		fmt.Printf("   Skipped: %v\n", err)
		return
	}
	fmt.Printf("   Center: %v\n", ball.Center.Position)
	fmt.Printf("   Radius: %.6f (distance to the Z axis %.6f)\n", ball.Radius, ball.Center.Position.Vec2().Len())
}

// SetupScene builds a dumbbell along Z: two unit spheres joined by a thin bar
func SetupScene() (*mesh.Mesh, medial.Config, StepDebugger) {
	m, err := shapes.Dumbbell(1, 4, 0.4, 40)
	if err != nil {
		log.Fatalf("Failed to build the dumbbell: %v", err)
	}

	cfg := medial.DefaultConfig()
	cfg.SampleCount = 12
	cfg.Containment = medial.ContainmentWinding

	return m, cfg, &SimpleDebugger{}
}

// RunDumbbell walks through the pipeline one sample at a time, then runs the
// whole transform and compares
func RunDumbbell() {
	fmt.Println("🧪 Medial axis of a dumbbell")
	fmt.Println("============================")

	m, cfg, debugger := SetupScene()
	bounds := m.Bounds()

	fmt.Printf("Mesh:\n")
	fmt.Printf("  Vertices: %d, triangles: %d\n", len(m.Vertices), len(m.Triangles))
	fmt.Printf("  Surface area: %.4f\n", m.SurfaceArea())
	fmt.Printf("  Bounds: %v -> %v\n", bounds.Min, bounds.Max)
	fmt.Println()

	transformer, err := medial.NewTransformer(m, cfg)
	if err != nil {
		log.Fatal(err)
	}
	result, err := transformer.Transform()
	if err != nil {
		log.Fatal(err)
	}

	// Replay each bisection by hand with the same probes
	for i, sample := range result.Samples {
		probe := result.Probes[i]
		debugger.DebugSample(i, sample, probe)

		outside := medial.EstimateProbe(sample, sample.Normal, -bounds.Diagonal())
		ball, err := medial.SolveMaximalBall(outside.Position, probe.Position, transformer.Classifier(), cfg.ConvergenceEpsilon, cfg.IterationCap)
		ball.Radius *= cfg.RadiusDamping
		debugger.DebugBisection(i, outside, probe, ball, err)
		fmt.Println()
	}

	stats := result.RadiusStats()
	fmt.Printf("Balls: %d, failures: %d\n", stats.Count, len(result.Failures))
	fmt.Printf("Radius: min %.4f, max %.4f, mean %.4f, stddev %.4f\n", stats.Min, stats.Max, stats.Mean, stats.StdDev)
	fmt.Println("Done!")
}

func main() {
	RunDumbbell()
}
