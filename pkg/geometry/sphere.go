package geometry

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect returns the distance to the near surface of the sphere.
//
// Only the near root of the quadratic is considered. A ray starting inside
// the sphere has a negative near root and therefore reports no hit.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	origin := ray.Origin.ToVector()
	center := s.Center.ToVector()

	// Quadratic equation coefficients: a*d² + b*d + c = 0
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(ray.Origin.Sub(s.Center))
	c := center.LengthSquared() + origin.LengthSquared() - 2*center.Dot(origin) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	d := (-b - math.Sqrt(discriminant)) / (2 * a)
	if d < 0 || math.IsNaN(d) {
		return 0, false
	}

	return d, true
}

// Validate checks that the sphere has a finite center and positive radius
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return core.ConfigError("sphere center", "must be finite, got %v", s.Center)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return core.ConfigError("sphere radius", "must be positive and finite, got %f", s.Radius)
	}
	return nil
}
