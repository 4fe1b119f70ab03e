package geometry

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// faceTolerance matches a hit distance against the slab plane it came from
const faceTolerance = 1e-4

// Box is an axis-aligned box
type Box struct {
	Bounds   core.AABB
	Material *material.Material
}

// NewBox creates a box spanning the two corners, in any order
func NewBox(a, b core.Vec3, mat *material.Material) *Box {
	return &Box{
		Bounds:   core.NewAABB(a, b),
		Material: mat,
	}
}

// NewBoxFromCenter creates a box from its center and half-extents
func NewBoxFromCenter(center, halfSize core.Vec3, mat *material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), mat)
}

func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func axisVector(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// Hit runs the slab test using the ray's cached reciprocal direction.
// From outside the entry face is returned; from inside, the exit face.
func (b *Box) Hit(ray core.Ray) (HitInfo, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	var near, far [3]float64

	for axis := 0; axis < 3; axis++ {
		o := component(ray.Origin, axis)
		lo := component(b.Bounds.Min, axis)
		hi := component(b.Bounds.Max, axis)
		if component(ray.Direction, axis) == 0 {
			// Parallel to this slab: inside it or never hits
			if o < lo || o > hi {
				return HitInfo{}, false
			}
			near[axis], far[axis] = math.Inf(-1), math.Inf(1)
			continue
		}
		inv := component(ray.InvDirection, axis)
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		near[axis], far[axis] = min(t1, t2), max(t1, t2)
		tmin = max(tmin, near[axis])
		tmax = min(tmax, far[axis])
	}

	if tmax < 0 || tmin > tmax {
		return HitInfo{}, false
	}

	t := tmin
	inside := false
	if tmin <= MinDistance {
		t = tmax
		inside = true
	}
	if t < MinDistance {
		return HitInfo{}, false
	}

	var normal core.Vec3
	for axis := 0; axis < 3; axis++ {
		inv := component(ray.InvDirection, axis)
		if !inside && math.Abs(near[axis]-tmin) < faceTolerance {
			if inv < 0 {
				normal = axisVector(axis, 1)
			} else {
				normal = axisVector(axis, -1)
			}
			break
		}
		// From inside, the exit face gives the normal, pointing out of the box
		if inside && math.Abs(far[axis]-tmax) < faceTolerance {
			if inv > 0 {
				normal = axisVector(axis, 1)
			} else {
				normal = axisVector(axis, -1)
			}
			break
		}
	}

	return HitInfo{T: t, Normal: normal, Material: b.Material}, true
}

// BoundingBox returns the box extent
func (b *Box) BoundingBox() core.AABB {
	return b.Bounds
}
