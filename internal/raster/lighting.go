package raster

import (
	"math"

	"orientview/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters for flat shading.
type LightConfig struct {
	LightDir mathutil.Vec3
	Ambient  float64
	Hemi     float64
	Direct   float64
	Gamma    float64
	InvGamma float64
}

// DefaultLightConfig returns a single key light up and to the right of
// the camera, with ambient and hemisphere fill.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mathutil.Vec3{150, 240, 180}.Normalized(),
		Ambient:  0.35,
		Hemi:     0.30,
		Direct:   0.85,
		Gamma:    2.2,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) Shade(normal mathutil.Vec3) float64 {
	// Lambertian, abs for double-sided faces
	ndl := math.Abs(normal.Dot(lc.LightDir))

	// Hemisphere fill: faces looking up get more sky light.
	hemi := (normal[1]*0.5 + 0.5) * lc.Hemi

	return lc.Ambient + hemi + ndl*lc.Direct
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}
