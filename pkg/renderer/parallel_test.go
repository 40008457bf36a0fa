package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"
)

// recordingLogger collects log lines for inspection
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestParallelRaytracer_MatchesSequential(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Width, config.Height = 97, 61 // Deliberately not a multiple of the tile size
	camera := NewCamera(config)
	scene := newTestScene()

	sequential := NewRaytracer(scene, camera).Render()

	for _, workers := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			pr := NewParallelRaytracer(scene, camera, ParallelConfig{TileSize: 16, NumWorkers: workers}, &recordingLogger{})

			img, stats, err := pr.Render(context.Background(), nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if stats.TotalPixels != 97*61 {
				t.Errorf("Expected %d pixels, got %d", 97*61, stats.TotalPixels)
			}
			if stats.TotalTiles != pr.TileCount() {
				t.Errorf("Expected %d tiles, got %d", pr.TileCount(), stats.TotalTiles)
			}
			if stats.Workers != workers {
				t.Errorf("Expected %d workers, got %d", workers, stats.Workers)
			}

			for y := 0; y < 61; y++ {
				for x := 0; x < 97; x++ {
					if img.RGBAAt(x, y) != sequential.RGBAAt(x, y) {
						t.Fatalf("Pixel (%d,%d) differs: %v vs %v", x, y, img.RGBAAt(x, y), sequential.RGBAAt(x, y))
					}
				}
			}
		})
	}
}

func TestParallelRaytracer_TileCallback(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Width, config.Height = 40, 30
	camera := NewCamera(config)
	scene := newTestScene()
	pr := NewParallelRaytracer(scene, camera, ParallelConfig{TileSize: 16, NumWorkers: 2}, &recordingLogger{})

	seen := make(map[image.Point]bool)
	count := 0
	img, _, err := pr.Render(context.Background(), func(result TileCompletionResult) {
		count++
		if result.TileNumber != count {
			t.Errorf("Expected tile number %d, got %d", count, result.TileNumber)
		}
		if result.TotalTiles != 6 {
			t.Errorf("Expected 6 total tiles, got %d", result.TotalTiles)
		}
		seen[image.Pt(result.TileX, result.TileY)] = true

		if result.TileImage.Bounds().Size() != result.Bounds.Size() {
			t.Errorf("Tile image size %v does not match bounds %v", result.TileImage.Bounds(), result.Bounds)
		}
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if count != 6 || len(seen) != 6 {
		t.Errorf("Expected 6 distinct tile callbacks, got %d calls for %d tiles", count, len(seen))
	}
	if img == nil {
		t.Fatal("Expected image")
	}
}

func TestParallelRaytracer_Cancelled(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Width, config.Height = 64, 64
	pr := NewParallelRaytracer(newTestScene(), NewCamera(config), ParallelConfig{TileSize: 8, NumWorkers: 2}, &recordingLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := pr.Render(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected nil image on cancellation")
	}
}

func TestParallelRaytracer_LogsProgress(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Width, config.Height = 8, 8
	logger := &recordingLogger{}
	pr := NewParallelRaytracer(newTestScene(), NewCamera(config), ParallelConfig{TileSize: 4, NumWorkers: 1}, logger)

	if _, _, err := pr.Render(context.Background(), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(logger.lines) == 0 {
		t.Error("Expected a progress line to be logged")
	}
}
