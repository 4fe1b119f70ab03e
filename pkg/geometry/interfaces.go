package geometry

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// MinDistance is the smallest accepted hit distance. Closer roots are
// treated as self-intersections with the surface a ray just left.
const MinDistance = 0.01

// HitInfo describes the closest intersection along a ray
type HitInfo struct {
	T        float64
	Normal   core.Vec3 // Unit length, outward for bodies, +Y for the floor
	Material *material.Material
	Floor    bool
}

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray) (HitInfo, bool)
	BoundingBox() core.AABB
}
