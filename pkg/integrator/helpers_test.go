package integrator

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/lights"
)

// testScene wraps a world and an optional sky
type testScene struct {
	world *geometry.World
	sky   *lights.Sky
}

func newTestScene(sky *lights.Sky, bodies ...geometry.Shape) *testScene {
	return &testScene{world: &geometry.World{Bodies: bodies}, sky: sky}
}

func (s *testScene) Intersect(ray core.Ray) (geometry.HitInfo, bool) {
	return s.world.Intersect(ray)
}

func (s *testScene) Background(direction core.Vec3) core.Vec3 {
	return s.sky.Color(direction)
}

func (s *testScene) SunDirection() core.Vec3 {
	if s.sky == nil {
		return lights.DefaultSunDirection
	}
	return s.sky.SunDirection
}

// scriptedSampler returns the given values in order, then 0.5 forever
type scriptedSampler struct {
	values []float64
	next   int
}

func (s *scriptedSampler) Get1D() float64 {
	if s.next >= len(s.values) {
		return 0.5
	}
	v := s.values[s.next]
	s.next++
	return v
}

func (s *scriptedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}
