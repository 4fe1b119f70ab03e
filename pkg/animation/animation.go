package animation

import (
	"fmt"
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// DefaultFrameRate is the frame rate used for animations and video
const DefaultFrameRate = 30

// Timeline maps frame numbers to time. Frames are numbered from 1.
type Timeline struct {
	Duration  float64 // Seconds
	FrameRate int
}

// DefaultTimeline returns a timeline of the given duration at DefaultFrameRate
func DefaultTimeline(duration float64) Timeline {
	return Timeline{Duration: duration, FrameRate: DefaultFrameRate}
}

// Validate checks that the timeline produces at least one frame
func (tl Timeline) Validate() error {
	if tl.FrameRate < 1 {
		return fmt.Errorf("animation: frame rate must be positive, got %d", tl.FrameRate)
	}
	if tl.FrameCount() < 1 {
		return fmt.Errorf("animation: duration %gs yields no frames", tl.Duration)
	}
	return nil
}

// FrameCount returns the number of frames in the timeline
func (tl Timeline) FrameCount() int {
	return int(math.Floor(tl.Duration*float64(tl.FrameRate) + 1e-9))
}

// Time returns the time in seconds at which frame is sampled. Frame 1 is
// at t=0.
func (tl Timeline) Time(frame int) float64 {
	return float64(frame-1) / float64(tl.FrameRate)
}

// Path returns the camera position and target at time t
type Path func(t float64) (position, target core.Vec3)

// Still returns a path that never moves
func Still(position, target core.Vec3) Path {
	return func(float64) (core.Vec3, core.Vec3) {
		return position, target
	}
}

// Orbit circles the camera around center in the horizontal plane at the
// given height, completing one revolution every period seconds, while
// looking at target.
func Orbit(center core.Vec3, radius, height, period float64, target core.Vec3) Path {
	return func(t float64) (core.Vec3, core.Vec3) {
		angle := 2 * math.Pi * t / period
		position := core.NewVec3(
			center.X+radius*math.Cos(angle),
			height,
			center.Z+radius*math.Sin(angle),
		)
		return position, target
	}
}

// DefaultOrbit is the camera path used for the showcase animation
func DefaultOrbit() Path {
	return Orbit(core.NewVec3(200, 0, 0), 800, -300, 20, core.NewVec3(300, -350, -200))
}

// Keyframe is one sampled point of a path
type Keyframe struct {
	Frame    int
	Time     float64
	Position core.Vec3
	Target   core.Vec3
}

// Keyframes samples path at every frame of the timeline
func (tl Timeline) Keyframes(path Path) []Keyframe {
	frames := make([]Keyframe, tl.FrameCount())
	for i := range frames {
		n := i + 1
		t := tl.Time(n)
		pos, target := path(t)
		frames[i] = Keyframe{Frame: n, Time: t, Position: pos, Target: target}
	}
	return frames
}
