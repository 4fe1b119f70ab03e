package material

import (
	"math"
	"testing"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	color := core.NewVec3(0.9, 0.2, 0.2)
	m := New(color, 0.3)

	if m.SpecularColor != color {
		t.Errorf("Expected specular color to default to color %v, got %v", color, m.SpecularColor)
	}
	if m.SpecularProbability != 1 {
		t.Errorf("Expected default specular probability 1, got %f", m.SpecularProbability)
	}
	if m.IndexOfRefraction != 1 {
		t.Errorf("Expected default IOR 1, got %f", m.IndexOfRefraction)
	}
	if m.IsEmissive() {
		t.Error("Expected non-emissive default material")
	}
}

func TestNew_Options(t *testing.T) {
	m := New(core.NewVec3(1, 1, 1), 0.5,
		WithSpecularProbability(0.25),
		WithSpecularColor(core.NewVec3(0, 0, 1)),
		WithTransparency(0.8, 1.5),
		WithEmission(core.NewVec3(2, 2, 2)),
	)

	if m.SpecularProbability != 0.25 || m.SpecularColor != core.NewVec3(0, 0, 1) {
		t.Errorf("Specular options not applied: %+v", m)
	}
	if m.Transparency != 0.8 || m.IndexOfRefraction != 1.5 {
		t.Errorf("Transparency option not applied: %+v", m)
	}
	if !m.IsEmissive() {
		t.Error("Expected emissive material")
	}
}

func TestIsPerfectMirror(t *testing.T) {
	tests := []struct {
		name     string
		material *Material
		expected bool
	}{
		{"mirror", Mirror(core.NewVec3(0.9, 0.9, 0.9)), true},
		{"diffuse", Diffuse(core.NewVec3(0.9, 0.9, 0.9)), false},
		{"glass", Glass(core.NewVec3(1, 1, 1), 1.5), false},
		{"glossy", New(core.NewVec3(1, 1, 1), 1, WithSpecularProbability(0.5)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.IsPerfectMirror(); got != tt.expected {
				t.Errorf("Expected IsPerfectMirror=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	a := New(core.NewVec3(1, 0, 0), 0, WithTransparency(0, 1))
	b := New(core.NewVec3(0, 0, 1), 1, WithTransparency(1, 2), WithEmission(core.NewVec3(4, 4, 4)))

	avg := a.Average(b)

	if avg == a || avg == b {
		t.Fatal("Expected a new material")
	}
	if avg.Color != core.NewVec3(0.5, 0, 0.5) {
		t.Errorf("Expected averaged color, got %v", avg.Color)
	}
	if avg.Smoothness != 0.5 || avg.Transparency != 0.5 || avg.IndexOfRefraction != 1.5 {
		t.Errorf("Expected averaged scalars, got %+v", avg)
	}
	if avg.Emission != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected averaged emission, got %v", avg.Emission)
	}
	if a.Color != core.NewVec3(1, 0, 0) {
		t.Error("Average must not mutate its receiver")
	}
}

func TestValidate(t *testing.T) {
	if err := Glass(core.NewVec3(1, 1, 1), 1.5).Validate(); err != nil {
		t.Errorf("Unexpected error for glass: %v", err)
	}

	bad := []*Material{
		New(core.NewVec3(1, 1, 1), 1.5),
		New(core.NewVec3(1, 1, 1), 0, WithSpecularProbability(-0.1)),
		New(core.NewVec3(1, 1, 1), 0, WithTransparency(2, 1.5)),
		New(core.NewVec3(1, 1, 1), 0, WithTransparency(1, 0)),
	}
	for i, m := range bad {
		if err := m.Validate(); err == nil {
			t.Errorf("Case %d: expected validation error for %+v", i, m)
		}
	}
}

func TestSchlick(t *testing.T) {
	if r := Schlick(0.3, 1.5, 1.5+1e-5); r != 0 {
		t.Errorf("Expected zero reflectance for matching media, got %f", r)
	}

	// Normal incidence gives r0
	r0 := math.Pow((1.0-1.5)/(1.0+1.5), 2)
	if r := Schlick(1, 1, 1.5); math.Abs(r-r0) > 1e-12 {
		t.Errorf("Expected r0=%f at normal incidence, got %f", r0, r)
	}

	// Grazing incidence reflects everything
	if r := Schlick(0, 1, 1.5); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected full reflectance at grazing incidence, got %f", r)
	}
}
