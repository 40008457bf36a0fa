package core

// Point is a location in world space. It is kept distinct from Vector so
// positions and displacements cannot be mixed up.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the point displaced by v
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.DX, p.Y + v.DY, p.Z + v.DZ}
}

// Sub returns the displacement from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// ToVector returns the displacement of p from the world origin
func (p Point) ToVector() Vector {
	return Vector{p.X, p.Y, p.Z}
}

// IsFinite reports whether every coordinate is a finite number
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}
