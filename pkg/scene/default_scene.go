package scene

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// NewDefaultScene creates the two-sphere scene: a red sphere in front of a
// larger green one on a blue background
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Setup {
	defaultCameraConfig := renderer.CameraConfig{
		Location: core.NewPoint(0, 0, 100),
		Up:       core.NewVector(0, 1, 0),
		Back:     core.NewVector(0, 0, 1),
		Distance: 100,
		Width:    640,
		Height:   480,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(core.NewColor(0, 149, 205))
	s.AddSphere(core.NewPoint(0, 0, -350), 300, core.NewColor(255, 0, 0))
	s.AddSphere(core.NewPoint(-250, -250, -500), 300, core.NewColor(0, 255, 0))

	return &Setup{
		Name:         "default",
		Scene:        s,
		CameraConfig: cameraConfig,
	}
}

// NewEmptyScene creates a scene with no objects; every pixel is background
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Setup {
	setup := NewDefaultScene(cameraOverrides...)
	setup.Name = "empty"
	setup.Scene = NewScene(core.NewColor(40, 40, 48))
	return setup
}
