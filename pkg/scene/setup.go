package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// Setup bundles a scene with the camera it is meant to be viewed through
type Setup struct {
	Name         string
	Scene        *Scene
	CameraConfig renderer.CameraConfig
}

// Camera creates the camera described by the setup's configuration
func (s *Setup) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// Validate checks both the camera configuration and the scene
func (s *Setup) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.Scene.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

// builders maps scene names to their constructors
var builders = map[string]func(...renderer.CameraConfig) *Setup{
	"default":    NewDefaultScene,
	"empty":      NewEmptyScene,
	"spheregrid": NewSphereGridScene,
}

// Create builds the named scene, applying an optional camera override
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Setup, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(cameraOverrides...), nil
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
