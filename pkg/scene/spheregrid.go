package scene

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to 8-bit RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(toByte(r), toByte(g), toByte(blue))
}

// toByte clamps a linear channel to [0, 1] and scales it to 0-255
func toByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(255 * v))
}

// NewSphereGridScene creates a scene with a grid of spheres whose colors
// sweep hue along x and chroma along z
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Setup {
	defaultCameraConfig := renderer.LookAtConfig(
		core.NewPoint(4.5, 6, 18),    // Camera back and above the grid
		core.NewPoint(4.5, 0.8, 4.5), // Center of grid, slightly lower
		core.NewVector(0, 1, 0),
		40.0,
		800, 450, // 16:9 aspect ratio
	)

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(core.NewColor(128, 178, 255))

	gridSize := 20

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			s.AddSphere(core.NewPoint(x, sphereRadius, z), sphereRadius, oklchToRGB(lightness, chroma, hue))
		}
	}

	return &Setup{
		Name:         "spheregrid",
		Scene:        s,
		CameraConfig: cameraConfig,
	}
}
