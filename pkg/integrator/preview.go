package integrator

import "github.com/df07/go-tile-pathtracer/pkg/core"

// PreviewTracer shades the first hit with a hard sun light and a single
// shadow ray. It converges in one sample and is used for quick framing.
type PreviewTracer struct{}

// NewPreviewTracer creates a preview tracer
func NewPreviewTracer() *PreviewTracer {
	return &PreviewTracer{}
}

// Trace returns gray sun-lit shading for the first hit or the sky on a miss
func (pt *PreviewTracer) Trace(ray core.Ray, scene Scene, walk *Walk) Result {
	walk.Reset(ray)

	hit, ok := scene.Intersect(ray)
	if !ok {
		return Result{Color: scene.Background(ray.Direction), Background: true}
	}

	sun := scene.SunDirection()
	light := max(0, hit.Normal.Dot(sun))
	if light > 0 {
		shadow := core.NewRay(ray.At(hit.T), sun)
		if _, blocked := scene.Intersect(shadow); blocked {
			light = 0
		}
	}

	return Result{Color: core.Splat(light), Background: true, Bounces: 1}
}

var _ Integrator = (*PreviewTracer)(nil)
