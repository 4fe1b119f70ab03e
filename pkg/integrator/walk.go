package integrator

import "github.com/df07/go-tile-pathtracer/pkg/core"

// ambientIOR is the refractive index of the medium the camera sits in
const ambientIOR = 1.0

// Walk holds the per-path state of a random walk. A Walk is owned by a
// single worker and reused for every path that worker traces.
type Walk struct {
	Ray    core.Ray
	Tint   core.Vec3
	Bounce int
	Mirror bool

	// iors is the stack of media the path is currently nested in
	iors    []float64
	Sampler core.Sampler
}

// NewWalk creates a walk drawing random numbers from sampler
func NewWalk(sampler core.Sampler) *Walk {
	return &Walk{
		Sampler: sampler,
		iors:    make([]float64, 0, 8),
	}
}

// Reset prepares the walk for a new path starting along ray
func (w *Walk) Reset(ray core.Ray) {
	w.Ray = ray
	w.Tint = core.Splat(1)
	w.Bounce = 0
	w.Mirror = true
	w.iors = append(w.iors[:0], ambientIOR)
}

// Terminate zeroes the tint and drops the mirror flag
func (w *Walk) Terminate() {
	w.Tint = core.Vec3{}
	w.Mirror = false
}

// CurrentIOR is the refractive index of the medium the path is in
func (w *Walk) CurrentIOR() float64 {
	return w.iors[len(w.iors)-1]
}

// OuterIOR is the refractive index of the medium surrounding the current one
func (w *Walk) OuterIOR() float64 {
	if len(w.iors) < 2 {
		return ambientIOR
	}
	return w.iors[len(w.iors)-2]
}

// Enter pushes a medium
func (w *Walk) Enter(ior float64) {
	w.iors = append(w.iors, ior)
}

// Exit pops the current medium. The ambient medium is never popped.
func (w *Walk) Exit() {
	if len(w.iors) > 1 {
		w.iors = w.iors[:len(w.iors)-1]
	}
}

// Depth returns the number of media on the stack, including the ambient one
func (w *Walk) Depth() int {
	return len(w.iors)
}
