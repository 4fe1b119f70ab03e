package integrator

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
)

var floorNormal = core.NewVec3(0, 1, 0)

// PathTracer implements an iterative unidirectional random walk. Each path
// bounces until it reaches a light, escapes to the sky, is killed by
// Russian roulette or runs out of bounces.
type PathTracer struct {
	config Config
}

// NewPathTracer creates a new path tracer
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// Config returns the tracer's walk limits
func (pt *PathTracer) Config() Config {
	return pt.config
}

// Trace follows one path from ray and returns its radiance
func (pt *PathTracer) Trace(ray core.Ray, scene Scene, walk *Walk) Result {
	walk.Reset(ray)

	for i := 0; i < pt.config.BounceLimit; i++ {
		if !pt.step(scene, walk) {
			break
		}
	}

	if walk.Bounce == pt.config.BounceLimit {
		walk.Tint = core.Vec3{}
	}

	return Result{
		Color:      walk.Tint,
		Background: walk.Bounce == 0 || walk.Mirror,
		Bounces:    walk.Bounce,
	}
}

// step advances the walk by one interaction and reports whether the path
// continues
func (pt *PathTracer) step(scene Scene, walk *Walk) bool {
	if pt.roulette(walk) {
		walk.Terminate()
		return false
	}

	hit, ok := scene.Intersect(walk.Ray)
	if !ok {
		walk.Tint = walk.Tint.MultiplyVec(scene.Background(walk.Ray.Direction))
		return false
	}

	mat := hit.Material
	isSpecular := mat.SpecularProbability > walk.Sampler.Get1D()

	if mat.IsEmissive() {
		walk.Tint = walk.Tint.MultiplyVec(mat.Emission)
		return false
	}
	if isSpecular {
		walk.Tint = walk.Tint.MultiplyVec(mat.SpecularColor)
	} else {
		walk.Tint = walk.Tint.MultiplyVec(mat.Color)
	}
	if !mat.IsPerfectMirror() {
		walk.Mirror = false
	}

	pos := walk.Ray.At(hit.T)
	walk.Bounce++

	var dir core.Vec3
	if hit.Floor {
		roughness := 0.0
		if isSpecular {
			roughness = mat.Smoothness
		}
		dir = Reflect(walk.Ray.Direction, floorNormal, roughness, walk.Sampler)
	} else {
		dir = Scatter(walk, hit.Normal, mat, isSpecular)
	}
	walk.Ray = core.NewRay(pos, dir)
	return true
}

// roulette reports whether the path should be killed. Survivors are
// reweighted by the inverse survival probability.
func (pt *PathTracer) roulette(walk *Walk) bool {
	if walk.Bounce <= pt.config.RouletteMinBounces {
		return false
	}
	p := min(1, walk.Tint.Sum())
	if walk.Sampler.Get1D() > p || p <= 0 {
		return true
	}
	walk.Tint = walk.Tint.Multiply(1 / p)
	return false
}

var _ Integrator = (*PathTracer)(nil)
