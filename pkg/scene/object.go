package scene

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// Object binds a flat color to a shape. The object owns its shape; shapes
// are never shared between objects.
type Object struct {
	Shape geometry.Shape
	Color core.Color
}

// NewObject creates a new object
func NewObject(shape geometry.Shape, color core.Color) Object {
	return Object{Shape: shape, Color: color}
}

// Intersect delegates to the object's shape
func (o *Object) Intersect(ray core.Ray) (float64, bool) {
	return o.Shape.Intersect(ray)
}
