package core

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// unitVectorAttempts bounds the rejection loop in RandomUnitVector
const unitVectorAttempts = 10

// RandomUnitVector rejection-samples a point in the unit ball and projects it
// onto the unit sphere. After unitVectorAttempts failures it returns +X.
func RandomUnitVector(sampler Sampler) Vec3 {
	for i := 0; i < unitVectorAttempts; i++ {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		lengthSq := p.LengthSquared()
		if lengthSq <= 1 && lengthSq != 0 {
			return p.Normalize()
		}
	}
	return NewVec3(1, 0, 0)
}
