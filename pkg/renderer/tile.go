package renderer

import "image"

// Tile is a rectangular region of the image rendered as one unit of work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTile creates a new tile
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds}
}

// NewTileGrid splits a width x height image into tiles of at most tileSize
// pixels on each side, in row-major order
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height, 1)
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
