package core

// Ray represents a ray with an origin and a direction.
// Producers are expected to hand out unit-length directions.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}
