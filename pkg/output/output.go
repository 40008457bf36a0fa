// Package output encodes rendered color grids into image files.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format the renderer can write
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists the supported formats
var Formats = []Format{FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat resolves a format name or file extension, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (supported: %v)", name, Formats)
	}
}

// Extension returns the file extension for the format, with the leading dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save encodes img into the file at path, creating parent directories
func Save(path string, img image.Image, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

// FrameFilename returns the file name of frame i inside dir, zero-padded so
// the files sort in frame order
func FrameFilename(dir string, frame int, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d%s", frame, format.Extension()))
}
