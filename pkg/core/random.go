package core

// Random is a small 32-bit generator advanced by a multiply-add step and
// scrambled with an xor-shift permutation. It is not safe for concurrent
// use; every worker owns its own instance.
type Random struct {
	state uint32
}

// NewRandom creates a generator with the given seed
func NewRandom(seed uint32) *Random {
	return &Random{state: seed}
}

// MixSeed derives a distinct seed for stream i from a base seed
func MixSeed(base uint32, i int) uint32 {
	h := base ^ (uint32(i)+1)*0x9E3779B9
	h ^= h >> 16
	h *= 0x85EBCA6B
	h ^= h >> 13
	h *= 0xC2B2AE35
	h ^= h >> 16
	return h
}

// Uint32 advances the state and returns the next scrambled value
func (r *Random) Uint32() uint32 {
	r.state = r.state*747796405 + 2891336453
	result := ((r.state >> ((r.state >> 28) + 4)) ^ r.state) * 277803737
	return (result >> 22) ^ result
}

// Float64 returns a value in [0, 1]
func (r *Random) Float64() float64 {
	return float64(r.Uint32()) / 4294967295.0
}

// Get1D implements Sampler
func (r *Random) Get1D() float64 {
	return r.Float64()
}

// Get2D implements Sampler
func (r *Random) Get2D() Vec2 {
	return NewVec2(r.Float64(), r.Float64())
}

// Get3D implements Sampler
func (r *Random) Get3D() Vec3 {
	return NewVec3(r.Float64(), r.Float64(), r.Float64())
}
