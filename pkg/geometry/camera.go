package geometry

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

var worldUp = core.NewVec3(0, 1, 0)

// Camera is a pinhole camera looking from Position toward Target
type Camera struct {
	Position core.Vec3
	Target   core.Vec3
	Forward  core.Vec3
	Right    core.Vec3
	Up       core.Vec3
	Scale    float64 // tan(fov/2), 1 for a 90 degree vertical field of view
}

// NewCamera creates a camera with a 90 degree vertical field of view
func NewCamera(position, target core.Vec3) *Camera {
	c := &Camera{Scale: 1}
	c.LookAt(position, target)
	return c
}

// NewCameraFOV creates a camera with the given vertical field of view in degrees
func NewCameraFOV(position, target core.Vec3, fov float64) *Camera {
	c := NewCamera(position, target)
	c.Scale = math.Tan(fov * 0.5 * math.Pi / 180)
	return c
}

// LookAt moves the camera and rebuilds its basis. Up is re-derived from
// right and forward so the basis stays orthonormal when pitched.
func (c *Camera) LookAt(position, target core.Vec3) {
	c.Position = position
	c.Target = target
	c.Forward = target.Subtract(position).Normalize()
	c.Right = c.Forward.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}

// Direction returns the unit view direction through the continuous pixel
// coordinate (px, py) of a width x height image. Row 0 is the top.
func (c *Camera) Direction(px, py float64, width, height int) core.Vec3 {
	aspect := float64(width) / float64(height)
	sx := (1 - 2*px/float64(width)) * aspect * c.Scale
	sy := (1 - 2*py/float64(height)) * c.Scale
	return c.Forward.Add(c.Right.Multiply(sx)).Add(c.Up.Multiply(sy)).Normalize()
}

// Ray returns the camera ray through (px, py)
func (c *Camera) Ray(px, py float64, width, height int) core.Ray {
	return core.NewRay(c.Position, c.Direction(px, py, width, height))
}
