// Command medialaxis approximates the medial axis of a closed triangle mesh,
// read from an OFF file or generated from a built-in solid, and prints one
// line per maximal ball.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/akmonengine/medial"
	"github.com/akmonengine/medial/mesh"
	"github.com/akmonengine/medial/render"
	"github.com/akmonengine/medial/shapes"
)

func main() {
	var (
		offPath     = flag.String("off", "", "OFF mesh file")
		shape       = flag.String("shape", "cube", "built-in solid when -off is empty: cube, sphere, box, cylinder or dumbbell")
		cells       = flag.Int("cells", shapes.DefaultCells, "marching cubes resolution of the built-in solids")
		seed        = flag.Uint64("seed", 1, "random seed of the sampler")
		fraction    = flag.Float64("fraction", 0.25, "fraction of the vertex count to sample")
		samples     = flag.Int("samples", 0, "explicit number of samples, overrides -fraction")
		workers     = flag.Int("workers", medial.DEFAULT_WORKERS, "goroutines running the solver")
		containment = flag.String("containment", "parity", "inside test: parity or winding")
		pngPath     = flag.String("png", "", "write a projection of the result to this PNG file")
		view        = flag.String("view", "xy", "projection plane of -png: xy, xz or yz")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	medial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	m, err := loadMesh(*offPath, *shape, *cells)
	if err != nil {
		log.Fatalf("Failed to load mesh: %v", err)
	}

	cfg := medial.DefaultConfig()
	cfg.Seed = *seed
	cfg.SampleFraction = *fraction
	cfg.SampleCount = *samples
	cfg.Workers = *workers
	switch *containment {
	case "parity":
		cfg.Containment = medial.ContainmentParity
	case "winding":
		cfg.Containment = medial.ContainmentWinding
	default:
		log.Fatalf("Unknown containment %q", *containment)
	}

	transformer, err := medial.NewTransformer(m, cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	result, err := transformer.Transform()
	if err != nil {
		log.Fatalf("Transform failed: %v", err)
	}

	for i, ball := range result.Balls {
		c := ball.Center.Position
		fmt.Printf("%d\t%.6f %.6f %.6f\t%.6f\n", i, c.X(), c.Y(), c.Z(), ball.Radius)
	}
	stats := result.RadiusStats()
	fmt.Fprintf(os.Stderr, "%d balls, %d failures, radius min %.4f max %.4f mean %.4f stddev %.4f\n",
		stats.Count, len(result.Failures), stats.Min, stats.Max, stats.Mean, stats.StdDev)

	if *pngPath != "" {
		v, err := render.ParseView(*view)
		if err != nil {
			log.Fatal(err)
		}
		if err := render.NewPainter(800, 800, v).SavePNG(*pngPath, m, result); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Projection saved to %s\n", *pngPath)
	}
}

func loadMesh(offPath, shape string, cells int) (*mesh.Mesh, error) {
	if offPath != "" {
		return mesh.LoadOFF(offPath)
	}

	switch shape {
	case "cube":
		return mesh.NewCube(2), nil
	case "sphere":
		return shapes.Sphere(1, cells)
	case "box":
		return shapes.Box(4, 2, 1, cells)
	case "cylinder":
		return shapes.Cylinder(4, 1, cells)
	case "dumbbell":
		return shapes.Dumbbell(1, 4, 0.4, cells)
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}
