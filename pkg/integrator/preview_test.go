package integrator

import (
	"testing"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/lights"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

func TestPreviewTracer(t *testing.T) {
	sky := lights.NewSky()
	sky.SunDirection = core.NewVec3(0, 1, 0)
	gray := material.Diffuse(core.Splat(0.5))
	down := core.NewRay(core.NewVec3(0, 500, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		bodies   []geometry.Shape
		ray      core.Ray
		expected core.Vec3
	}{
		{"lit top", []geometry.Shape{geometry.NewSphere(core.Vec3{}, 100, gray)}, down, core.Splat(1)},
		{"shadowed", []geometry.Shape{
			geometry.NewSphere(core.Vec3{}, 100, gray),
			geometry.NewSphere(core.NewVec3(0, 300, 90), 50, gray),
		}, core.NewRay(core.NewVec3(0, 200, 500), core.NewVec3(0, -200, -500).Normalize()), core.Vec3{}},
		{"facing away", []geometry.Shape{geometry.NewSphere(core.Vec3{}, 100, gray)},
			core.NewRay(core.NewVec3(0, -500, 0), core.NewVec3(0, 1, 0)), core.Vec3{}},
		{"miss", nil, core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), sky.Color(core.NewVec3(1, 0, 0))},
	}

	pt := NewPreviewTracer()
	walk := NewWalk(core.NewRandom(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := newTestScene(sky, tt.bodies...)
			result := pt.Trace(tt.ray, scene, walk)
			if !result.Color.Equals(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result.Color)
			}
			if !result.Background {
				t.Error("Expected preview results to always converge")
			}
		})
	}
}
