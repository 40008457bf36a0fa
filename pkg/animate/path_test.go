package animate

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

func baseConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Location: core.NewPoint(0, 0, 100),
		Up:       core.NewVector(0, 1, 0),
		Back:     core.NewVector(0, 0, 1),
		Distance: 100,
		Width:    32,
		Height:   24,
	}
}

func pointsClose(a, b core.Point, tolerance float64) bool {
	return a.Sub(b).Magnitude() <= tolerance
}

func TestCameraPath_LocationAt(t *testing.T) {
	path := NewCameraPath(baseConfig(),
		Keyframe{Location: core.NewPoint(0, 0, 100)},
		Keyframe{Location: core.NewPoint(100, 0, 100)},
		Keyframe{Location: core.NewPoint(100, 50, 100)},
	)

	tests := []struct {
		t        float64
		expected core.Point
	}{
		{0, core.NewPoint(0, 0, 100)},
		{0.25, core.NewPoint(50, 0, 100)},
		{0.5, core.NewPoint(100, 0, 100)},
		{0.75, core.NewPoint(100, 25, 100)},
		{1, core.NewPoint(100, 50, 100)},
		{-1, core.NewPoint(0, 0, 100)},  // clamped
		{2, core.NewPoint(100, 50, 100)}, // clamped
	}

	for _, tt := range tests {
		got := path.LocationAt(tt.t)
		if !pointsClose(got, tt.expected, 1e-3) {
			t.Errorf("t=%f: expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestCameraPath_EasingChangesMidpoints(t *testing.T) {
	path := NewCameraPath(baseConfig(),
		Keyframe{Location: core.NewPoint(0, 0, 100)},
		Keyframe{Location: core.NewPoint(100, 0, 100)},
	)
	path.Easing = ease.InQuad

	quarter := path.LocationAt(0.25)
	if math.Abs(quarter.X-6.25) > 1e-3 {
		t.Errorf("Expected eased x=6.25 at t=0.25, got %f", quarter.X)
	}

	end := path.LocationAt(1)
	if !pointsClose(end, core.NewPoint(100, 0, 100), 1e-3) {
		t.Errorf("Expected path to end on the last keyframe, got %v", end)
	}
}

func TestCameraPath_SingleKeyframe(t *testing.T) {
	path := NewCameraPath(baseConfig(), Keyframe{Location: core.NewPoint(1, 2, 3)})

	for _, tt := range []float64{0, 0.5, 1} {
		if got := path.LocationAt(tt); got != core.NewPoint(1, 2, 3) {
			t.Errorf("Expected fixed location, got %v", got)
		}
	}
}

func TestCameraPath_Cameras(t *testing.T) {
	path := NewCameraPath(baseConfig(),
		Keyframe{Location: core.NewPoint(0, 0, 100)},
		Keyframe{Location: core.NewPoint(0, 0, 200)},
	)

	cameras := path.Cameras(5)
	if len(cameras) != 5 {
		t.Fatalf("Expected 5 cameras, got %d", len(cameras))
	}

	first, last := cameras[0].Location(), cameras[4].Location()
	if !pointsClose(first, core.NewPoint(0, 0, 100), 1e-3) || !pointsClose(last, core.NewPoint(0, 0, 200), 1e-3) {
		t.Errorf("Expected frames to span the path, got %v to %v", first, last)
	}
	for _, c := range cameras {
		if c.Width() != 32 || c.Height() != 24 {
			t.Errorf("Expected base image size, got %dx%d", c.Width(), c.Height())
		}
	}

	if single := path.Cameras(1); len(single) != 1 || single[0].Location() != core.NewPoint(0, 0, 100) {
		t.Errorf("Expected a single frame at the first keyframe")
	}
	if none := path.Cameras(0); len(none) != 0 {
		t.Errorf("Expected no cameras, got %d", len(none))
	}
}

func TestCameraPath_Validate(t *testing.T) {
	empty := NewCameraPath(baseConfig())
	if err := empty.Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for empty path, got %v", err)
	}

	bad := NewCameraPath(baseConfig(), Keyframe{Location: core.NewPoint(math.NaN(), 0, 0)})
	if err := bad.Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for NaN keyframe, got %v", err)
	}

	badBase := baseConfig()
	badBase.Distance = 0
	if err := NewCameraPath(badBase, Keyframe{}).Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for bad base, got %v", err)
	}
}
