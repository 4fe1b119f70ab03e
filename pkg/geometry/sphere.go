package geometry

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. The ray direction must be
// unit length. The near root is preferred; the far root is used when the
// origin is inside the sphere.
func (s *Sphere) Hit(ray core.Ray) (HitInfo, bool) {
	oc := s.Center.Subtract(ray.Origin)
	d := oc.Dot(ray.Direction)
	disc := d*d - oc.LengthSquared() + s.Radius*s.Radius

	if disc < 0 {
		return HitInfo{}, false
	}

	var t float64
	if disc == 0 {
		t = d
		if t <= MinDistance {
			return HitInfo{}, false
		}
	} else {
		sqrtD := math.Sqrt(disc)
		t = d - sqrtD
		if t <= MinDistance {
			t = d + sqrtD
			if t <= MinDistance {
				return HitInfo{}, false
			}
		}
	}

	normal := ray.At(t).Subtract(s.Center).Normalize()
	return HitInfo{T: t, Normal: normal, Material: s.Material}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.Splat(s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
