package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

func TestCamera_Basis(t *testing.T) {
	cam := NewCamera(core.NewVec3(400, -200, -800), core.NewVec3(0, 0, 0))

	if math.Abs(cam.Forward.Length()-1) > 1e-12 || math.Abs(cam.Right.Length()-1) > 1e-12 || math.Abs(cam.Up.Length()-1) > 1e-12 {
		t.Fatal("Expected unit basis vectors")
	}
	if math.Abs(cam.Forward.Dot(cam.Right)) > 1e-12 || math.Abs(cam.Forward.Dot(cam.Up)) > 1e-12 || math.Abs(cam.Right.Dot(cam.Up)) > 1e-12 {
		t.Error("Expected orthogonal basis")
	}
	if cam.Up.Y <= 0 {
		t.Errorf("Expected up to point toward +Y, got %v", cam.Up)
	}
}

func TestCamera_Direction(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	width, height := 200, 100

	tests := []struct {
		name     string
		px, py   float64
		expected core.Vec3
	}{
		{"center", 100, 50, core.NewVec3(0, 0, 1)},
		{"top center", 100, 0, core.NewVec3(0, 1, 1).Normalize()},
		{"bottom center", 100, 100, core.NewVec3(0, -1, 1).Normalize()},
		{"left edge", 0, 50, core.NewVec3(-2, 0, 1).Normalize()},
		{"right edge", 200, 50, core.NewVec3(2, 0, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.Direction(tt.px, tt.py, width, height)
			if !got.Equals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_FOV(t *testing.T) {
	cam := NewCameraFOV(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 90)
	if math.Abs(cam.Scale-1) > 1e-12 {
		t.Errorf("Expected 90 degree field of view to give scale 1, got %f", cam.Scale)
	}

	narrow := NewCameraFOV(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 60)
	top := narrow.Direction(50, 0, 100, 100)
	angle := math.Acos(top.Dot(core.NewVec3(0, 0, 1))) * 180 / math.Pi
	if math.Abs(angle-30) > 1e-9 {
		t.Errorf("Expected half-angle of 30 degrees, got %f", angle)
	}
}
