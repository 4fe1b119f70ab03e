package core

import "math"

// AABB is an axis-aligned bounding box
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB spans the two corners, given in any order
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// Union returns the smallest box enclosing both boxes
func (b AABB) Union(other AABB) AABB {
	return NewAABB(
		NewAABB(b.Min, other.Min).Min,
		NewAABB(b.Max, other.Max).Max,
	)
}

// Center returns the midpoint of the box
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}
