package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

func TestFloor_Hit(t *testing.T) {
	m1 := material.Diffuse(core.Splat(0.7))
	m2 := material.Diffuse(core.Splat(0.3))
	floor := NewFloor(-500, m1, m2, 100)

	ray := core.NewRay(core.NewVec3(10, 0, 10), core.NewVec3(0, -1, 0))
	hit, isHit := floor.Hit(ray)
	if !isHit {
		t.Fatal("Expected floor hit")
	}
	if math.Abs(hit.T-500) > 1e-9 {
		t.Errorf("Expected t=500, got %f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) || !hit.Floor {
		t.Errorf("Expected +Y floor hit, got %+v", hit)
	}
}

func TestFloor_Hit_Rejected(t *testing.T) {
	m := material.Diffuse(core.Splat(0.7))

	tests := []struct {
		name  string
		floor *Floor
		ray   core.Ray
	}{
		{"inactive", &Floor{Height: -1, Material1: m, Material2: m, Size: 10}, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))},
		{"upward ray", NewFloor(-1, m, m, 10), core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))},
		{"horizontal ray", NewFloor(-1, m, m, 10), core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))},
		{"below floor", NewFloor(1, m, m, 10), core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))},
		{"beyond horizon", NewFloor(-1, m, m, 10), core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -1e-7, 0).Normalize())},
		{"nil floor", nil, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := tt.floor.Hit(tt.ray); isHit {
				t.Errorf("Expected no hit, got t=%f", hit.T)
			}
		})
	}
}

func TestFloor_Checkerboard(t *testing.T) {
	m1 := material.Diffuse(core.Splat(0.7))
	m2 := material.Diffuse(core.Splat(0.3))
	floor := NewFloor(0, m1, m2, 100)

	down := core.NewVec3(0, -1, 0)
	materialAt := func(x, z float64) *material.Material {
		hit, ok := floor.Hit(core.NewRay(core.NewVec3(x, 10, z), down))
		if !ok {
			t.Fatalf("Expected floor hit at (%f, %f)", x, z)
		}
		return hit.Material
	}

	tests := []struct {
		name     string
		x, z     float64
		expected *material.Material
	}{
		{"both first half", 10, 10, m1},
		{"both second half", 60, 60, m1},
		{"x second half", 60, 10, m2},
		{"z second half", 10, 60, m2},
		{"next period", 110, 10, m1},
		{"negative x", -10, 10, m2},
		{"negative x further", -60, 10, m1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := materialAt(tt.x, tt.z); got != tt.expected {
				t.Errorf("Wrong checker material at (%f, %f)", tt.x, tt.z)
			}
		})
	}
}
