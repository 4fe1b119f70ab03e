package scene

import (
	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/lights"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// Default render settings shared by the built-in scenes
const (
	DefaultHeight       = 1440
	DefaultAspect       = 16.0 / 9.0
	DefaultAntialiasing = 4
	DefaultBounceLimit  = 8
	DefaultTileSize     = 128
	DefaultIterations   = 100
	DefaultFloorHeight  = -500
	DefaultCheckerSize  = 100
)

var (
	defaultCameraPosition = core.NewVec3(400, -200, -800)
	defaultCameraTarget   = core.NewVec3(0, 0, 0)
)

// newBaseScene returns a scene with default settings, camera and floor but no bodies
func newBaseScene(name string) *Scene {
	s := &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(defaultCameraPosition, defaultCameraTarget),
		Antialiasing: DefaultAntialiasing,
		BounceLimit:  DefaultBounceLimit,
		TileSize:     DefaultTileSize,
		Iterations:   DefaultIterations,
		Sky:          lights.NewInactiveSky(),
		Policy:       geometry.NearestHit,
	}
	s.SetResolution(DefaultHeight, DefaultAspect)

	gray := material.Diffuse(core.Splat(0.7))
	s.Floor = geometry.NewFloor(DefaultFloorHeight, gray, gray, DefaultCheckerSize)
	return s
}

// NewDefaultScene creates the showcase scene: colored diffuse spheres, a
// small mirror and two spherical lights over a gray floor, with the sky off
func NewDefaultScene() *Scene {
	s := newBaseScene("default")

	white := material.Diffuse(core.Splat(0.9))
	red := material.Diffuse(core.NewVec3(0.9, 0.2, 0.2))
	green := material.Diffuse(core.NewVec3(0.2, 0.9, 0.2))
	blue := material.Diffuse(core.NewVec3(0.2, 0.2, 0.9))
	mirror := material.Mirror(core.Splat(0.9))
	cyanLight := material.Light(core.NewVec3(0.1, 1, 1.5))
	amberLight := material.Light(core.NewVec3(2, 1, 0.2))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -200, 50), 300, cyanLight),
		geometry.NewSphere(core.NewVec3(700, -350, 150), 150, red),
		geometry.NewSphere(core.NewVec3(100, -400, -400), 100, green),
		geometry.NewSphere(core.NewVec3(300, -400, -100), 100, blue),
		geometry.NewSphere(core.NewVec3(750, -450, -150), 50, amberLight),
		geometry.NewSphere(core.NewVec3(-350, -375, -350), 125, white),
		geometry.NewSphere(core.NewVec3(450, -440, -300), 60, mirror),
	)

	return s
}

// NewBoxRoomScene creates a cube frame built from twelve edge boxes with a
// colored box light near each upper-corner diagonal
func NewBoxRoomScene() *Scene {
	s := newBaseScene("box-room")

	const (
		size      = 400.0 // Half-extent of the frame
		thickness = 40.0  // Half-thickness of each edge
		inset     = 0.75  // Light offset as a fraction of size
		lightSize = 30.0  // Half-extent of each light
	)
	frame := material.Diffuse(core.Splat(0.7))

	outer, inner := size+thickness, size-thickness
	box := func(x0, y0, z0, x1, y1, z1 float64) geometry.Shape {
		return geometry.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), frame)
	}

	s.Add(
		// Bottom edges
		box(outer, -outer, -outer, inner, -inner, outer),
		box(-outer, -outer, -outer, -inner, -inner, outer),
		box(inner, -outer, -outer, -inner, -inner, -inner),
		box(inner, -outer, outer, -inner, -inner, inner),

		// Top edges
		box(outer, outer, -outer, inner, inner, outer),
		box(-outer, outer, -outer, -inner, inner, outer),
		box(inner, outer, -outer, -inner, inner, -inner),
		box(inner, outer, outer, -inner, inner, inner),

		// Vertical edges
		box(outer, -inner, -outer, inner, inner, -inner),
		box(-outer, -inner, -outer, -inner, inner, -inner),
		box(outer, -inner, outer, inner, inner, inner),
		box(-outer, -inner, outer, -inner, inner, inner),
	)

	lightsAt := []struct {
		x, z     float64
		emission core.Vec3
	}{
		{inset * size, inset * size, core.NewVec3(5, 0.5, 0.5)},
		{-inset * size, inset * size, core.NewVec3(0.5, 5, 0.5)},
		{inset * size, -inset * size, core.NewVec3(0.5, 0.5, 5)},
		{-inset * size, -inset * size, core.NewVec3(5, 5, 0.5)},
	}
	for _, l := range lightsAt {
		s.Add(geometry.NewBoxFromCenter(core.NewVec3(l.x, 0, l.z), core.Splat(lightSize), material.Light(l.emission)))
	}

	return s
}
