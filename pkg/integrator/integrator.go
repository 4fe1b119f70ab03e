package integrator

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
)

// Scene is the view of the world an integrator needs
type Scene interface {
	// Intersect returns the closest hit along a unit-direction ray
	Intersect(ray core.Ray) (geometry.HitInfo, bool)
	// Background returns the radiance of rays that escape the scene
	Background(direction core.Vec3) core.Vec3
	// SunDirection returns the unit vector toward the sun
	SunDirection() core.Vec3
}

// Result is the outcome of tracing one camera ray
type Result struct {
	Color core.Vec3
	// Background is set when the path saw nothing but sky or perfect
	// mirrors, so further samples of the pixel cannot change it
	Background bool
	Bounces    int
}

// Integrator computes the radiance arriving along a camera ray
type Integrator interface {
	Trace(ray core.Ray, scene Scene, walk *Walk) Result
}

// Config bounds the random walk
type Config struct {
	BounceLimit        int // Maximum surface interactions per path
	RouletteMinBounces int // Russian roulette starts once the bounce count exceeds this
}

// DefaultConfig returns the walk limits used by the default scene
func DefaultConfig() Config {
	return Config{
		BounceLimit:        8,
		RouletteMinBounces: 5,
	}
}
