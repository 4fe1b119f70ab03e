package scene

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/lights"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// NewMirrorScene creates mirrors of varying smoothness under an open sky
func NewMirrorScene() *Scene {
	s := newBaseScene("mirrors")
	s.Sky = lights.NewSky()
	s.Floor.Material2 = material.Diffuse(core.Splat(0.3))

	for i, smoothness := range []float64{1, 0.95, 0.8, 0.5} {
		m := material.New(core.Splat(0.9), smoothness)
		x := -450 + float64(i)*300
		s.Add(geometry.NewSphere(core.NewVec3(x, -380, 0), 120, m))
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, -450, -400), 50, material.Light(core.NewVec3(4, 3, 2))))

	return s
}

// NewGlassScene creates clear and frosted glass in front of colored bodies
func NewGlassScene() *Scene {
	s := newBaseScene("glass")
	s.Sky = lights.NewSky()
	s.BounceLimit = 16
	s.Floor.Material2 = material.Diffuse(core.NewVec3(0.2, 0.2, 0.25))

	clearGlass := material.Glass(core.Splat(1), 1.5)
	frosted := material.New(core.Splat(0.95), 0.9,
		material.WithSpecularProbability(0.85),
		material.WithTransparency(1, 1.5))
	water := material.New(core.NewVec3(0.8, 0.9, 1), 1, material.WithTransparency(0.9, 1.33))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -350, -250), 150, clearGlass),
		geometry.NewSphere(core.NewVec3(350, -400, -250), 100, frosted),
		geometry.NewBoxFromCenter(core.NewVec3(-350, -400, -250), core.Splat(100), water),
		// Nested bubble inside the clear sphere
		geometry.NewSphere(core.NewVec3(0, -350, -250), 60, material.Glass(core.Splat(1), 1.0)),
		geometry.NewSphere(core.NewVec3(-200, -350, 300), 150, material.Diffuse(core.NewVec3(0.9, 0.2, 0.2))),
		geometry.NewSphere(core.NewVec3(250, -350, 300), 150, material.Diffuse(core.NewVec3(0.2, 0.2, 0.9))),
	)

	return s
}

// NewBlendScene lines up spheres whose materials step from diffuse to
// mirror by repeated averaging
func NewBlendScene() *Scene {
	s := newBaseScene("blend")
	s.Sky = lights.NewSky()

	diffuse := material.Diffuse(core.NewVec3(0.9, 0.3, 0.1))
	mirror := material.Mirror(core.Splat(0.95))

	steps := []*material.Material{diffuse}
	for m := diffuse; len(steps) < 5; {
		m = m.Average(mirror)
		steps = append(steps, m)
	}

	for i, m := range steps {
		x := -600 + float64(i)*300
		s.Add(geometry.NewSphere(core.NewVec3(x, -400, 0), 100, m))
	}

	return s
}
