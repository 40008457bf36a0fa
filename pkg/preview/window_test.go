package preview

import (
	"image"
	"image/color"
	"testing"
)

func solid(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestWindow_Layout(t *testing.T) {
	w := NewWindow(64, 48)

	width, height := w.Layout(1920, 1080)
	if width != 64 || height != 48 {
		t.Errorf("Expected layout 64x48, got %dx%d", width, height)
	}
}

func TestWindow_SnapshotOnlyWhenDirty(t *testing.T) {
	w := NewWindow(4, 4)

	if _, ok := w.snapshot(); !ok {
		t.Fatal("Expected the initial frame to be drawn")
	}
	if _, ok := w.snapshot(); ok {
		t.Error("Expected no snapshot without changes")
	}

	w.SetImage(solid(4, 4, color.RGBA{R: 255, A: 255}))
	pixels, ok := w.snapshot()
	if !ok {
		t.Fatal("Expected snapshot after SetImage")
	}
	if pixels[0] != 255 || pixels[3] != 255 {
		t.Errorf("Expected red opaque first pixel, got %v", pixels[:4])
	}
}

func TestWindow_UpdateTile(t *testing.T) {
	w := NewWindow(8, 8)
	w.snapshot()

	green := color.RGBA{G: 255, A: 255}
	w.UpdateTile(image.Rect(4, 0, 8, 4), solid(4, 4, green))

	pixels, ok := w.snapshot()
	if !ok {
		t.Fatal("Expected snapshot after tile update")
	}

	stride := 8 * 4
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g := pixels[y*stride+x*4+1]
			inTile := x >= 4 && y < 4
			if inTile != (g == 255) {
				t.Fatalf("Pixel (%d,%d): inTile=%t green=%d", x, y, inTile, g)
			}
		}
	}
}
