package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/wrenfield/gopathtracer/pkg/camera"
	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/scene"
	"github.com/wrenfield/gopathtracer/pkg/tracer"
)

// Stats holds the render driver's summary counters: image size, samples
// per pixel and throughput.
type Stats struct {
	Width, Height int
	Samples       int
	RaysPerSecond float64
}

// tile is a contiguous, disjoint range of scanlines assigned to one
// worker; workers never write outside their own tile.
type tile struct {
	id       int
	startRow int
	endRow   int
}

// Render renders scene through cam into a new PixelBuffer using
// TotalSamples per pixel, splitting the image into row tiles and
// rendering them concurrently across numWorkers goroutines. seed derives
// each tile's private RNG, so output is reproducible for a fixed seed
// regardless of goroutine scheduling. numWorkers <= 0 uses runtime.NumCPU().
func Render(sc *scene.Scene, cam *camera.Camera, seed int64, numWorkers int) *PixelBuffer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	buffer := NewPixelBuffer(cam.Width, cam.Height)
	tiles := makeTiles(cam.Height, numWorkers)

	var wg sync.WaitGroup
	for _, t := range tiles {
		wg.Add(1)
		go func(t tile) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(t.id)))
			renderTile(sc, cam, buffer, rng, t)
		}(t)
	}
	wg.Wait()

	return buffer
}

func makeTiles(height, numWorkers int) []tile {
	if numWorkers > height {
		numWorkers = height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	rowsPerTile := (height + numWorkers - 1) / numWorkers
	var tiles []tile
	for start, id := 0, 0; start < height; start, id = start+rowsPerTile, id+1 {
		end := start + rowsPerTile
		if end > height {
			end = height
		}
		tiles = append(tiles, tile{id: id, startRow: start, endRow: end})
	}
	return tiles
}

func renderTile(sc *scene.Scene, cam *camera.Camera, buffer *PixelBuffer, rng *rand.Rand, t tile) {
	path := make([]core.HitRecord, core.MaxBounces)

	for y := t.startRow; y < t.endRow; y++ {
		for x := 0; x < cam.Width; x++ {
			buffer.Set(x, y, samplePixel(sc, cam, rng, path, x, y))
		}
	}
}

func samplePixel(sc *scene.Scene, cam *camera.Camera, rng *rand.Rand, path []core.HitRecord, x, y int) core.Vec3 {
	accum := core.Vec3{}
	for s := 0; s < core.TotalSamples; s++ {
		px := float64(x) + rng.Float64() - 0.5
		py := float64(y) + rng.Float64() - 0.5

		ray := cam.PrimaryRay(px, py)
		hits := tracer.TracePath(ray, path, 0, sc, rng)
		accum = accum.Add(tracer.CalculatePathColor(path, hits, sc))
	}
	return accum.Multiply(1.0 / core.TotalSamples)
}
