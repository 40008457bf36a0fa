package geometry

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// Shape interface for objects that can be hit by rays.
//
// Intersect returns the smallest non-negative distance d along the ray at
// which it meets the surface (point = origin + direction*d), or false when
// no such d exists. Implementations must never report NaN.
type Shape interface {
	Intersect(ray core.Ray) (float64, bool)
}

// Validator is implemented by shapes that can check their own parameters
type Validator interface {
	Validate() error
}
