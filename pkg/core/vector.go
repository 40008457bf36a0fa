package core

import "math"

// Vector is a free 3D vector: a direction or displacement, never a location.
type Vector struct {
	DX, DY, DZ float64
}

// NewVector creates a new Vector
func NewVector(dx, dy, dz float64) Vector {
	return Vector{DX: dx, DY: dy, DZ: dz}
}

// Magnitude returns the Euclidean norm of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.DX*v.DX + v.DY*v.DY + v.DZ*v.DZ
}

// Normalize returns the vector scaled to unit length.
// A zero vector yields NaN components; callers must not pass one.
func (v Vector) Normalize() Vector {
	return v.Scale(1.0 / v.Magnitude())
}

// Cross returns the right-handed cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		DX: v.DY*other.DZ - v.DZ*other.DY,
		DY: v.DZ*other.DX - v.DX*other.DZ,
		DZ: v.DX*other.DY - v.DY*other.DX,
	}
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(k float64) Vector {
	return Vector{v.DX * k, v.DY * k, v.DZ * k}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.DX + other.DX, v.DY + other.DY, v.DZ + other.DZ}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.DX - other.DX, v.DY - other.DY, v.DZ - other.DZ}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.DX*other.DX + v.DY*other.DY + v.DZ*other.DZ
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.DX, -v.DY, -v.DZ}
}

// IsFinite reports whether every component is a finite number
func (v Vector) IsFinite() bool {
	return isFinite(v.DX) && isFinite(v.DY) && isFinite(v.DZ)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
