package core

// Ray represents a ray with an origin and direction. InvDirection caches
// the component-wise reciprocal of Direction for slab tests.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
}

// NewRay creates a new ray. Intersection routines assume direction is unit length.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, InvDirection: direction.Invert()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
