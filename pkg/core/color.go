package core

// Color is a flat 8-bit RGB color. It satisfies image/color.Color so a
// rendered grid can be written straight into an image.RGBA.
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
