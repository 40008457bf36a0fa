package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Scene is the part of a scene the renderer needs. It is satisfied by
// *scene.Scene and kept here to avoid a circular import.
type Scene interface {
	Cast(ray core.Ray) core.Color
}

// Raytracer drives one ray per pixel through the camera into the scene
type Raytracer struct {
	scene  Scene
	camera *Camera
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, camera *Camera) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
	}
}

// Pixel returns the color seen through pixel (x, y)
func (rt *Raytracer) Pixel(x, y int) core.Color {
	ray := rt.camera.CameraRay(x, y)
	return rt.scene.Cast(ray)
}

// Render renders every pixel in row-major order and returns the image
func (rt *Raytracer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.camera.Width(), rt.camera.Height()))
	rt.RenderBounds(img, img.Bounds())
	return img
}

// RenderBounds renders the pixels inside bounds into img.
// Each pixel is written exactly once, so disjoint bounds may be rendered
// concurrently into the same image.
func (rt *Raytracer) RenderBounds(img *image.RGBA, bounds image.Rectangle) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, toRGBA(rt.Pixel(x, y)))
		}
	}

	return RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		TotalTiles:  1,
	}
}

// toRGBA converts a flat color to an opaque RGBA value
func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
