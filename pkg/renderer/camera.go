package renderer

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// basisEpsilon is the smallest |up × back| accepted as a usable basis
const basisEpsilon = 1e-12

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Location core.Point  // Eye position; every ray starts here
	Up       core.Vector // v: camera-up axis
	Back     core.Vector // n: camera-backward axis, the eye looks along -n
	Distance float64     // Distance from the eye to the image plane along -n
	Width    int         // Image width in pixels
	Height   int         // Image height in pixels
}

// Camera maps pixel coordinates to world-space rays using an orthonormal
// {u, v, n} basis. It is immutable once created.
type Camera struct {
	location core.Point
	u        core.Vector // camera right, derived from v × n
	v        core.Vector
	n        core.Vector
	distance float64
	width    int
	height   int
}

// NewCamera creates a camera from the given configuration.
// Up and Back must not be parallel; this is not checked.
func NewCamera(config CameraConfig) *Camera {
	u := config.Up.Cross(config.Back).Normalize()

	return &Camera{
		location: config.Location,
		u:        u,
		v:        config.Up,
		n:        config.Back,
		distance: config.Distance,
		width:    config.Width,
		height:   config.Height,
	}
}

// NewCameraChecked validates the configuration before creating the camera
func NewCameraChecked(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewCamera(config), nil
}

// CameraRay returns the ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner; x grows along u and y grows along -v.
// Coordinates are not bounds-checked.
func (c *Camera) CameraRay(x, y int) core.Ray {
	direction := c.u.Scale(float64(x) - float64(c.width)/2 + 0.5).
		Add(c.v.Scale(float64(c.height)/2 - float64(y) - 0.5)).
		Add(c.n.Scale(-c.distance))

	return core.NewRay(c.location, direction.Normalize())
}

// Location returns the camera position
func (c *Camera) Location() core.Point {
	return c.location
}

// Basis returns the camera's right, up and back axes
func (c *Camera) Basis() (u, v, n core.Vector) {
	return c.u, c.v, c.n
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Validate checks the configuration against the preconditions of NewCamera
func (cfg CameraConfig) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return core.ConfigError("camera size", "must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Location.IsFinite() {
		return core.ConfigError("camera location", "must be finite, got %v", cfg.Location)
	}
	if math.IsNaN(cfg.Distance) || math.IsInf(cfg.Distance, 0) || cfg.Distance <= 0 {
		return core.ConfigError("camera distance", "must be positive and finite, got %f", cfg.Distance)
	}
	if !cfg.Up.IsFinite() || cfg.Up.LengthSquared() == 0 {
		return core.ConfigError("camera up", "must be a finite non-zero vector, got %v", cfg.Up)
	}
	if !cfg.Back.IsFinite() || cfg.Back.LengthSquared() == 0 {
		return core.ConfigError("camera back", "must be a finite non-zero vector, got %v", cfg.Back)
	}
	if cfg.Up.Cross(cfg.Back).Magnitude() < basisEpsilon {
		return core.ConfigError("camera basis", "up %v and back %v are parallel", cfg.Up, cfg.Back)
	}
	return nil
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Location != (core.Point{}) {
		result.Location = override.Location
	}
	if override.Up != (core.Vector{}) {
		result.Up = override.Up
	}
	if override.Back != (core.Vector{}) {
		result.Back = override.Back
	}
	if override.Distance != 0 {
		result.Distance = override.Distance
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}

	return result
}

// LookAtConfig builds a camera configuration that looks from location toward
// target with the given vertical field of view in degrees. The up axis is
// made perpendicular to the viewing direction, so the basis is orthonormal.
func LookAtConfig(location, target core.Point, worldUp core.Vector, vfov float64, width, height int) CameraConfig {
	back := location.Sub(target).Normalize()
	up := worldUp.Subtract(back.Scale(worldUp.Dot(back))).Normalize()

	// Pixels are one world unit apart on the image plane, so the plane
	// distance follows from half the image height and half the field of view
	theta := vfov * math.Pi / 180.0
	distance := (float64(height) / 2) / math.Tan(theta/2)

	return CameraConfig{
		Location: location,
		Up:       up,
		Back:     back,
		Distance: distance,
		Width:    width,
		Height:   height,
	}
}
