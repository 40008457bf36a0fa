package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalTiles  int           // Number of tiles the image was split into
	Workers     int           // Number of workers used
	Elapsed     time.Duration // Wall-clock render time
}

// Merge adds the pixel and tile counts of other to the stats
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalTiles += other.TotalTiles
}

// PixelsPerSecond returns the render throughput
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.Elapsed <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.Elapsed.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}

	return total / float64(pixelCount)
}
