package animate

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// FrameSink receives each finished frame. It may be called concurrently
// for different frames.
type FrameSink func(frame int, img *image.RGBA) error

// RenderFrames renders frames along the path, at most limit at a time
// (0 = CPU count). The first error from rendering or the sink cancels the
// remaining frames and is returned.
func RenderFrames(ctx context.Context, scene renderer.Scene, path *CameraPath, frames, limit int, sink FrameSink, logger core.Logger) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if frames <= 0 {
		return core.ConfigError("frames", "must be positive, got %d", frames)
	}
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NewDefaultLogger()
	}

	cameras := path.Cameras(frames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, camera := range cameras {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img := renderer.NewRaytracer(scene, camera).Render()
			if err := sink(i, img); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			logger.Printf("Frame %d/%d done\n", i+1, frames)
			return nil
		})
	}

	return g.Wait()
}
