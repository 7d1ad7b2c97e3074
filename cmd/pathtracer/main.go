// Command pathtracer renders a static triangle/sphere scene to a PNG
// using an unbiased Monte-Carlo path tracer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/wrenfield/gopathtracer/pkg/camera"
	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/loaders"
	"github.com/wrenfield/gopathtracer/pkg/renderer"
)

// config holds the parsed CLI configuration.
type config struct {
	Width, Height int
	ObjPath       string
	MtlPath       string
	Output        string
	Seed          int64
	NumWorkers    int
}

func main() {
	cfg := parseFlags()
	logger := core.NewDefaultLogger()

	if err := run(cfg, logger); err != nil {
		logger.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, logger core.Logger) error {
	loadStart := time.Now()
	sc, err := loaders.LoadScene(cfg.ObjPath, cfg.MtlPath)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}
	logger.Printf("Loaded: %d triangles, %d spheres, %d materials (%.2fs)\n",
		len(sc.Triangles), len(sc.Spheres), len(sc.Materials), time.Since(loadStart).Seconds())

	cam := camera.NewCamera(cfg.Width, cfg.Height, sc.BoundingBox)

	renderStart := time.Now()
	buffer := renderer.Render(sc, cam, cfg.Seed, cfg.NumWorkers)
	renderTime := time.Since(renderStart).Seconds()

	totalRays := float64(cfg.Width) * float64(cfg.Height) * float64(core.TotalSamples)
	logger.Printf("Rendered %dx%d in %.2fs (%.0f rays/sec)\n",
		cfg.Width, cfg.Height, renderTime, totalRays/renderTime)

	if err := writePNG(cfg.Output, buffer); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Printf("Wrote %s\n", cfg.Output)
	return nil
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.ObjPath, "obj", "scene.obj", "Path to the Wavefront OBJ scene file")
	flag.StringVar(&cfg.MtlPath, "mtl", "scene.mtl", "Path to the Wavefront MTL material file")
	flag.StringVar(&cfg.Output, "out", "render.png", "Output PNG path")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Master RNG seed")
	flag.IntVar(&cfg.NumWorkers, "workers", 0, "Number of parallel tile workers (0 = auto-detect CPU count)")
	flag.Parse()

	cfg.Width, cfg.Height = 500, 500
	args := flag.Args()
	if len(args) >= 2 {
		fmt.Sscanf(args[0], "%d", &cfg.Width)
		fmt.Sscanf(args[1], "%d", &cfg.Height)
	}
	return cfg
}

func writePNG(path string, buffer *renderer.PixelBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	img := &image.RGBA{
		Pix:    buffer.Pixels,
		Stride: 4 * buffer.Width,
		Rect:   image.Rect(0, 0, buffer.Width, buffer.Height),
	}
	return png.Encode(file, img)
}
