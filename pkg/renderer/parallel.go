package renderer

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds of the tile in the full image
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Completed tile count including this one (1-based)
	TotalTiles int // Total number of tiles in the image
}

// ParallelRaytracer renders an image as a grid of tiles on a worker pool.
// Its output is identical to Raytracer.Render.
type ParallelRaytracer struct {
	scene  Scene
	camera *Camera
	config ParallelConfig
	tiles  []*Tile
	logger core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(scene Scene, camera *Camera, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if logger == nil {
		logger = core.NewDefaultLogger()
	}

	return &ParallelRaytracer{
		scene:  scene,
		camera: camera,
		config: config,
		tiles:  NewTileGrid(camera.Width(), camera.Height(), config.TileSize),
		logger: logger,
	}
}

// Render renders all tiles and returns the assembled image.
// tileCallback, if not nil, is called from the calling goroutine once per
// finished tile, in completion order.
func (pr *ParallelRaytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, pr.camera.Width(), pr.camera.Height()))

	workerPool := NewWorkerPool(pr.scene, pr.camera, len(pr.tiles), pr.config.NumWorkers)
	workerPool.Start(ctx)

	pr.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		pr.camera.Width(), pr.camera.Height(), len(pr.tiles), workerPool.GetNumWorkers())

	for taskID, tile := range pr.tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Image:  img,
		})
	}

	stats := RenderStats{Workers: workerPool.GetNumWorkers()}
	var renderErr error

	// Drain every result so the pool can shut down cleanly
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.Merge(result.Stats)

		if tileCallback != nil && renderErr == nil {
			tile := pr.tiles[result.TaskID]
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / pr.tileSize(),
				TileY:      tile.Bounds.Min.Y / pr.tileSize(),
				Bounds:     tile.Bounds,
				TileImage:  extractTileImage(img, tile.Bounds),
				TileNumber: i + 1,
				TotalTiles: len(pr.tiles),
			})
		}
	}

	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", renderErr)
	}

	stats.Elapsed = time.Since(startTime)
	return img, stats, nil
}

// TileCount returns the number of tiles in the grid
func (pr *ParallelRaytracer) TileCount() int {
	return len(pr.tiles)
}

func (pr *ParallelRaytracer) tileSize() int {
	if pr.config.TileSize <= 0 {
		return max(pr.camera.Width(), pr.camera.Height(), 1)
	}
	return pr.config.TileSize
}

// extractTileImage copies one tile out of the shared image
func extractTileImage(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(tileImage, tileImage.Bounds(), img, bounds.Min, draw.Src)
	return tileImage
}
