package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// Scene contains the objects to render and the color used where no object is hit
type Scene struct {
	Background core.Color
	Objects    []Object // Insertion order decides ties
}

// Hit describes the nearest intersection of a ray with the scene.
// Object points into the scene's slice and is only meant to be read.
type Hit struct {
	Index    int     // Position of the object in insertion order
	Object   *Object // The object that was hit
	Distance float64 // Distance along the ray
}

// NewScene creates an empty scene with the given background color
func NewScene(background core.Color) *Scene {
	return &Scene{
		Background: background,
		Objects:    make([]Object, 0),
	}
}

// Add appends a shape with the given color to the scene
func (s *Scene) Add(shape geometry.Shape, color core.Color) {
	s.Objects = append(s.Objects, NewObject(shape, color))
}

// AddSphere appends a sphere with the given color to the scene
func (s *Scene) AddSphere(center core.Point, radius float64, color core.Color) {
	s.Add(geometry.NewSphere(center, radius), color)
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.Objects)
}

// NearestIntersection finds the object with the smallest hit distance along the ray.
//
// Objects that miss, or that report a NaN or negative distance, are skipped.
// When several objects report exactly the same minimum distance, the one
// inserted first wins.
func (s *Scene) NearestIntersection(ray core.Ray) (Hit, bool) {
	nearest := Hit{Index: -1}
	found := false

	for i := range s.Objects {
		d, ok := s.Objects[i].Intersect(ray)
		if !ok || math.IsNaN(d) || d < 0 {
			continue
		}

		// Strict comparison keeps the earliest object on ties
		if !found || d < nearest.Distance {
			nearest = Hit{Index: i, Object: &s.Objects[i], Distance: d}
			found = true
		}
	}

	return nearest, found
}

// Cast returns the color of the nearest object hit by the ray, or the
// background color when nothing is hit
func (s *Scene) Cast(ray core.Ray) core.Color {
	if hit, ok := s.NearestIntersection(ray); ok {
		return hit.Object.Color
	}
	return s.Background
}

// Validate checks every object for a usable shape
func (s *Scene) Validate() error {
	for i, obj := range s.Objects {
		if obj.Shape == nil {
			return core.ConfigError(fmt.Sprintf("object %d", i), "has no shape")
		}
		if v, ok := obj.Shape.(geometry.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
		}
	}
	return nil
}
