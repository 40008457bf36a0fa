package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/df07/go-pinhole-raytracer/pkg/animate"
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/output"
	"github.com/df07/go-pinhole-raytracer/pkg/preview"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

// Config holds the parsed command line options
type Config struct {
	Scene      string
	Width      int
	Height     int
	Workers    int
	TileSize   int
	Format     output.Format
	OutputDir  string
	Frames     int
	SweepX     float64
	Preview    bool
	Sequential bool
}

func main() {
	config, help, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	// Show help if requested
	if help {
		printHelp()
		return
	}

	if err := run(context.Background(), config, core.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line into a Config
func parseFlags(fs *flag.FlagSet, args []string) (Config, bool, error) {
	sceneType := fs.String("scene", "default", "Scene type: "+fmt.Sprint(scene.Names()))
	width := fs.Int("width", 0, "Image width override (0 = scene default)")
	height := fs.Int("height", 0, "Image height override (0 = scene default)")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = auto-detect)")
	tileSize := fs.Int("tile", 64, "Tile size in pixels")
	format := fs.String("format", "png", "Output format: png, bmp or tiff")
	outDir := fs.String("out", "output", "Output directory")
	frames := fs.Int("frames", 1, "Number of frames; more than 1 renders a camera sweep")
	sweepX := fs.Float64("sweep", 200, "Sideways camera travel over an animation, in world units")
	showPreview := fs.Bool("preview", false, "Show the render in a window while it progresses")
	sequential := fs.Bool("sequential", false, "Render on a single goroutine")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return Config{}, false, err
	}
	if *width < 0 || *height < 0 {
		return Config{}, false, fmt.Errorf("image size must not be negative, got %dx%d", *width, *height)
	}
	if *frames < 1 {
		return Config{}, false, fmt.Errorf("frames must be at least 1, got %d", *frames)
	}

	return Config{
		Scene:      *sceneType,
		Width:      *width,
		Height:     *height,
		Workers:    *workers,
		TileSize:   *tileSize,
		Format:     parsedFormat,
		OutputDir:  *outDir,
		Frames:     *frames,
		SweepX:     *sweepX,
		Preview:    *showPreview,
		Sequential: *sequential,
	}, *help, nil
}

func printHelp() {
	fmt.Println("Pinhole Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, name := range scene.Names() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
}

// createSetup builds the requested scene with any size overrides and validates it
func createSetup(config Config) (*scene.Setup, error) {
	setup, err := scene.Create(config.Scene, renderer.CameraConfig{
		Width:  config.Width,
		Height: config.Height,
	})
	if err != nil {
		return nil, err
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return setup, nil
}

func run(ctx context.Context, config Config, logger core.Logger) error {
	setup, err := createSetup(config)
	if err != nil {
		return err
	}

	logger.Printf("Using %s scene (%d objects)...\n", setup.Name, setup.Scene.Len())

	outputDir := filepath.Join(config.OutputDir, setup.Name)
	if config.Frames > 1 {
		return renderAnimation(ctx, setup, config, outputDir, logger)
	}
	return renderStill(ctx, setup, config, outputDir, logger)
}

// renderStill renders one image and saves it with a timestamped name
func renderStill(ctx context.Context, setup *scene.Setup, config Config, outputDir string, logger core.Logger) error {
	camera := setup.Camera()

	var window *preview.Window
	if config.Preview {
		window = preview.NewWindow(camera.Width(), camera.Height())
	}

	render := func() (*image.RGBA, error) {
		startTime := time.Now()

		if config.Sequential {
			img := renderer.NewRaytracer(setup.Scene, camera).Render()
			logger.Printf("Render completed in %v\n", time.Since(startTime))
			return img, nil
		}

		pr := renderer.NewParallelRaytracer(setup.Scene, camera, renderer.ParallelConfig{
			TileSize:   config.TileSize,
			NumWorkers: config.Workers,
		}, logger)

		var onTile func(renderer.TileCompletionResult)
		if window != nil {
			onTile = func(tile renderer.TileCompletionResult) {
				window.UpdateTile(tile.Bounds, tile.TileImage)
			}
		}

		img, stats, err := pr.Render(ctx, onTile)
		if err != nil {
			return nil, err
		}
		logger.Printf("Render completed in %v (%d tiles, %.0f pixels/s)\n",
			stats.Elapsed, stats.TotalTiles, stats.PixelsPerSecond())
		return img, nil
	}

	save := func(img *image.RGBA) error {
		timestamp := time.Now().Format("20060102_150405")
		filename := filepath.Join(outputDir, "render_"+timestamp+config.Format.Extension())
		if err := output.Save(filename, img, config.Format); err != nil {
			return err
		}
		logger.Printf("Render saved as %s\n", filename)
		return nil
	}

	if window == nil {
		img, err := render()
		if err != nil {
			return err
		}
		return save(img)
	}

	// The window has to own the main goroutine, so render in the background
	errc := make(chan error, 1)
	go func() {
		img, err := render()
		if err == nil {
			window.SetImage(img)
			err = save(img)
		}
		errc <- err
	}()

	if err := preview.Run(window, "Pinhole Raytracer - "+setup.Name); err != nil {
		return fmt.Errorf("preview window: %w", err)
	}
	return <-errc
}

// renderAnimation sweeps the camera sideways and back and writes one file per frame
func renderAnimation(ctx context.Context, setup *scene.Setup, config Config, outputDir string, logger core.Logger) error {
	start := setup.CameraConfig.Location
	path := animate.NewCameraPath(setup.CameraConfig,
		animate.Keyframe{Location: start},
		animate.Keyframe{Location: start.Add(core.NewVector(config.SweepX, 0, 0))},
		animate.Keyframe{Location: start},
	)
	path.Easing = ease.InOutQuad

	startTime := time.Now()
	err := animate.RenderFrames(ctx, setup.Scene, path, config.Frames, config.Workers, func(frame int, img *image.RGBA) error {
		return output.Save(output.FrameFilename(outputDir, frame, config.Format), img, config.Format)
	}, logger)
	if err != nil {
		return err
	}

	logger.Printf("Rendered %d frames into %s in %v\n", config.Frames, outputDir, time.Since(startTime))
	return nil
}
