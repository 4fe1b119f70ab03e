package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/lights"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// Scene contains everything needed to render a frame
type Scene struct {
	Name   string
	Width  int
	Height int
	Camera *geometry.Camera

	Antialiasing int // Sub-pixel grid is Antialiasing x Antialiasing
	BounceLimit  int
	TileSize     int
	Iterations   int

	Bodies []geometry.Shape
	Floor  *geometry.Floor
	Sky    *lights.Sky
	Policy geometry.Policy
}

// AspectRatio returns width / height
func (s *Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// SetResolution sets the frame height and derives the width from aspect
func (s *Scene) SetResolution(height int, aspect float64) {
	s.Height = height
	s.Width = int(math.Round(float64(height) * aspect))
}

// Add appends bodies to the scene
func (s *Scene) Add(bodies ...geometry.Shape) {
	s.Bodies = append(s.Bodies, bodies...)
}

// World returns the intersection view of the scene's geometry
func (s *Scene) World() geometry.World {
	return geometry.World{Bodies: s.Bodies, Floor: s.Floor, Policy: s.Policy}
}

// Intersect returns the closest hit among bodies and floor
func (s *Scene) Intersect(ray core.Ray) (geometry.HitInfo, bool) {
	world := s.World()
	return world.Intersect(ray)
}

// Background returns the sky radiance for an escaping ray
func (s *Scene) Background(direction core.Vec3) core.Vec3 {
	return s.Sky.Color(direction)
}

// SunDirection returns the direction toward the sun
func (s *Scene) SunDirection() core.Vec3 {
	if s.Sky == nil {
		return lights.DefaultSunDirection
	}
	return s.Sky.SunDirection
}

// Materials returns every distinct material referenced by the scene
func (s *Scene) Materials() []*material.Material {
	seen := make(map[*material.Material]bool)
	var out []*material.Material
	add := func(m *material.Material) {
		if m != nil && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, body := range s.Bodies {
		switch b := body.(type) {
		case *geometry.Sphere:
			add(b.Material)
		case *geometry.Box:
			add(b.Material)
		}
	}
	if s.Floor != nil {
		add(s.Floor.Material1)
		add(s.Floor.Material2)
	}
	return out
}

// Validate checks the scene for settings the renderer cannot honor
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, s.TileSize)
	}
	if s.Antialiasing < 1 || s.BounceLimit < 1 || s.Iterations < 1 {
		return fmt.Errorf("%w: aa=%d bounces=%d iterations=%d",
			ErrInvalidSampling, s.Antialiasing, s.BounceLimit, s.Iterations)
	}
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.Floor != nil && s.Floor.Active {
		if s.Floor.Size < 1 {
			return fmt.Errorf("%w: %g", ErrInvalidFloor, s.Floor.Size)
		}
		if s.Floor.Material1 == nil || s.Floor.Material2 == nil {
			return fmt.Errorf("%w: floor", ErrMissingMaterial)
		}
	}
	for i, body := range s.Bodies {
		switch b := body.(type) {
		case *geometry.Sphere:
			if b.Material == nil {
				return fmt.Errorf("%w: body %d", ErrMissingMaterial, i)
			}
		case *geometry.Box:
			if b.Material == nil {
				return fmt.Errorf("%w: body %d", ErrMissingMaterial, i)
			}
		}
	}
	for _, m := range s.Materials() {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidMaterial, err)
		}
	}
	return nil
}
