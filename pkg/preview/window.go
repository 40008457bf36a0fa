// Package preview shows rendered images in a desktop window.
package preview

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window displays a frame buffer that can be filled in tile by tile while a
// render is still running. It implements ebiten.Game.
type Window struct {
	mu    sync.Mutex
	frame *image.RGBA
	dirty bool

	fbImg *ebiten.Image
}

// NewWindow creates a window backed by an empty width x height frame
func NewWindow(width, height int) *Window {
	return &Window{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
		dirty: true,
	}
}

// SetImage replaces the whole frame. img must match the window size.
func (w *Window) SetImage(img image.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draw.Draw(w.frame, w.frame.Bounds(), img, img.Bounds().Min, draw.Src)
	w.dirty = true
}

// UpdateTile copies a finished tile into the frame at bounds
func (w *Window) UpdateTile(bounds image.Rectangle, tile image.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draw.Draw(w.frame, bounds.Intersect(w.frame.Bounds()), tile, tile.Bounds().Min, draw.Src)
	w.dirty = true
}

// snapshot returns a copy of the frame pixels if they changed since the last call
func (w *Window) snapshot() ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.dirty {
		return nil, false
	}
	w.dirty = false
	pixels := make([]byte, len(w.frame.Pix))
	copy(pixels, w.frame.Pix)
	return pixels, true
}

// Size returns the frame size in pixels
func (w *Window) Size() (int, int) {
	bounds := w.frame.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.fbImg == nil {
		width, height := w.Size()
		w.fbImg = ebiten.NewImage(width, height)
	}

	if pixels, ok := w.snapshot(); ok {
		w.fbImg.WritePixels(pixels)
	}
	screen.DrawImage(w.fbImg, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Size()
}

// Run opens the window and blocks until it is closed
func Run(w *Window, title string) error {
	width, height := w.Size()

	// Small renders get scaled up so they are readable on screen
	scale := 1
	for width*(scale+1) <= 1280 && height*(scale+1) <= 960 && scale < 4 {
		scale++
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

// Show displays a finished image and blocks until the window is closed
func Show(img image.Image, title string) error {
	bounds := img.Bounds()
	w := NewWindow(bounds.Dx(), bounds.Dy())
	w.SetImage(img)
	return Run(w, title)
}
