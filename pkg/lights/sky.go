package lights

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// Default sky parameters
var (
	DefaultSunDirection = core.NewVec3(0.4, 0.4, 0.9).Normalize()
	DefaultSunColor     = core.NewVec3(1, 0.95, 0.9).Multiply(5)
	DefaultHorizonColor = core.NewVec3(0.6, 0.75, 0.9)
	DefaultZenithColor  = core.NewVec3(0.3, 0.55, 0.8)
)

// DefaultSunSharpness is the exponent applied to the sun's cosine lobe
const DefaultSunSharpness = 1024

// Sky is a procedural environment returned for rays that escape the scene.
// It blends from the horizon color to the zenith color by |dir.y| and adds a
// sharp sun lobe.
type Sky struct {
	Active       bool
	HorizonColor core.Vec3
	ZenithColor  core.Vec3
	SunDirection core.Vec3 // Unit vector toward the sun
	SunColor     core.Vec3
	SunSharpness float64
}

// NewSky creates an active sky with the default colors and sun
func NewSky() *Sky {
	return &Sky{
		Active:       true,
		HorizonColor: DefaultHorizonColor,
		ZenithColor:  DefaultZenithColor,
		SunDirection: DefaultSunDirection,
		SunColor:     DefaultSunColor,
		SunSharpness: DefaultSunSharpness,
	}
}

// NewInactiveSky creates a sky that contributes no light but still carries
// a sun direction for preview shading
func NewInactiveSky() *Sky {
	sky := NewSky()
	sky.Active = false
	return sky
}

// Color returns the radiance seen along a unit direction. Inactive or nil
// skies are black.
func (s *Sky) Color(direction core.Vec3) core.Vec3 {
	if s == nil || !s.Active {
		return core.Vec3{}
	}
	base := s.HorizonColor.Lerp(s.ZenithColor, math.Abs(direction.Y))
	sun := math.Pow(max(0, direction.Dot(s.SunDirection)), s.SunSharpness)
	return base.Add(s.SunColor.Multiply(sun))
}
