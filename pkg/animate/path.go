// Package animate moves the camera along keyframed paths and renders the
// resulting frame sequences.
package animate

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// Keyframe is a camera location the path passes through
type Keyframe struct {
	Location core.Point
}

// CameraPath moves the camera location through its keyframes while keeping
// the rest of Base (basis, distance, image size) fixed. Each segment between
// consecutive keyframes takes the same share of the animation.
type CameraPath struct {
	Keyframes []Keyframe
	Base      renderer.CameraConfig
	Easing    ease.TweenFunc // Applied per segment; nil means linear
}

// NewCameraPath creates a path with linear easing
func NewCameraPath(base renderer.CameraConfig, keyframes ...Keyframe) *CameraPath {
	return &CameraPath{
		Keyframes: keyframes,
		Base:      base,
		Easing:    ease.Linear,
	}
}

// Validate checks that the path has keyframes and a usable base camera
func (p *CameraPath) Validate() error {
	if len(p.Keyframes) == 0 {
		return core.ConfigError("camera path", "needs at least one keyframe")
	}
	for i, k := range p.Keyframes {
		if !k.Location.IsFinite() {
			return core.ConfigError(fmt.Sprintf("keyframe %d", i), "location must be finite, got %v", k.Location)
		}
	}
	return p.Base.Validate()
}

// LocationAt returns the camera location at normalized time t in [0, 1]
func (p *CameraPath) LocationAt(t float64) core.Point {
	if len(p.Keyframes) == 1 {
		return p.Keyframes[0].Location
	}

	t = max(0, min(1, t))
	segments := len(p.Keyframes) - 1
	scaled := t * float64(segments)
	segment := min(int(scaled), segments-1)
	local := float32(scaled - float64(segment))

	from := p.Keyframes[segment].Location
	to := p.Keyframes[segment+1].Location

	return core.NewPoint(
		p.tween(from.X, to.X, local),
		p.tween(from.Y, to.Y, local),
		p.tween(from.Z, to.Z, local),
	)
}

// tween evaluates one coordinate of a segment at local time in [0, 1]
func (p *CameraPath) tween(from, to float64, local float32) float64 {
	easing := p.Easing
	if easing == nil {
		easing = ease.Linear
	}
	if from == to {
		return from
	}

	value, _ := gween.New(0, 1, 1, easing).Set(local)
	return from + (to-from)*float64(value)
}

// ConfigAt returns the camera configuration at normalized time t
func (p *CameraPath) ConfigAt(t float64) renderer.CameraConfig {
	config := p.Base
	config.Location = p.LocationAt(t)
	return config
}

// Cameras returns one camera per frame, evenly spaced in time from the first
// keyframe to the last
func (p *CameraPath) Cameras(frames int) []*renderer.Camera {
	cameras := make([]*renderer.Camera, 0, max(frames, 0))
	for i := 0; i < frames; i++ {
		cameras = append(cameras, renderer.NewCamera(p.ConfigAt(frameTime(i, frames))))
	}
	return cameras
}

// frameTime maps frame i of n to normalized time
func frameTime(i, frames int) float64 {
	if frames <= 1 {
		return 0
	}
	return float64(i) / float64(frames-1)
}
