package core

import (
	"math"
	"testing"
)

// sequenceSampler replays fixed values for deterministic tests
type sequenceSampler struct {
	values []float64
	i      int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func (s *sequenceSampler) Get2D() Vec2 { return NewVec2(s.Get1D(), s.Get1D()) }
func (s *sequenceSampler) Get3D() Vec3 { return NewVec3(s.Get1D(), s.Get1D(), s.Get1D()) }

func TestRandomUnitVector_IsUnit(t *testing.T) {
	r := NewRandom(99)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(r)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomUnitVector_Fallback(t *testing.T) {
	// Every candidate lands on the corner (1,1,1), outside the unit ball
	sampler := &sequenceSampler{values: []float64{1}}
	v := RandomUnitVector(sampler)
	if v != NewVec3(1, 0, 0) {
		t.Errorf("Expected +X fallback, got %v", v)
	}
	if sampler.i != 3*unitVectorAttempts {
		t.Errorf("Expected %d draws, got %d", 3*unitVectorAttempts, sampler.i)
	}
}

func TestRandomUnitVector_RejectsOrigin(t *testing.T) {
	// First candidate is the origin (rejected), second is (0,0,1)
	sampler := &sequenceSampler{values: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 1}}
	v := RandomUnitVector(sampler)
	if v != NewVec3(0, 0, 1) {
		t.Errorf("Expected (0,0,1), got %v", v)
	}
}
