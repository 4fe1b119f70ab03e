package geometry

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// maxFloorDistance discards floor hits near the horizon
const maxFloorDistance = 1e6

// Floor is an infinite horizontal checkerboard at a fixed height, visible
// only from above
type Floor struct {
	Active    bool
	Height    float64
	Material1 *material.Material
	Material2 *material.Material
	Size      float64 // Checker period in world units
}

// NewFloor creates an active floor
func NewFloor(height float64, m1, m2 *material.Material, size float64) *Floor {
	return &Floor{
		Active:    true,
		Height:    height,
		Material1: m1,
		Material2: m2,
		Size:      size,
	}
}

// Hit intersects a downward ray with the floor plane
func (f *Floor) Hit(ray core.Ray) (HitInfo, bool) {
	if f == nil || !f.Active || ray.Direction.Y >= 0 {
		return HitInfo{}, false
	}

	t := (f.Height - ray.Origin.Y) / ray.Direction.Y
	if t <= MinDistance || t >= maxFloorDistance {
		return HitInfo{}, false
	}

	p := ray.At(t)
	mat := f.Material1
	if f.checker(p.X) != f.checker(p.Z) {
		mat = f.Material2
	}

	return HitInfo{T: t, Normal: core.NewVec3(0, 1, 0), Material: mat, Floor: true}, true
}

// checker reports which half of its period coordinate x falls in. Negative
// coordinates are mirrored and shifted half a period so the pattern keeps
// alternating across zero.
func (f *Floor) checker(x float64) bool {
	if x < 0 {
		x = math.Abs(x) + f.Size/2
	}
	size := int(f.Size)
	return float64(int(x)%size)-f.Size/2 < 0
}
