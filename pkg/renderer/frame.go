package renderer

import "github.com/df07/go-tile-pathtracer/pkg/core"

// Frame accumulates samples for one image. Color holds the running sum of
// samples scaled to [0,255], SampleCount the number of samples per pixel and
// Active a 0/1 mask of pixels that still need sampling.
type Frame struct {
	Width       int
	Height      int
	Color       *core.Image
	SampleCount []int
	Active      []float64
	Iteration   int
}

// NewFrame allocates an empty frame with every pixel active
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:       width,
		Height:      height,
		Color:       core.NewImage(width, height),
		SampleCount: make([]int, width*height),
		Active:      make([]float64, width*height),
	}
	f.Reset()
	return f
}

// Reset clears accumulated samples and reactivates every pixel
func (f *Frame) Reset() {
	f.Color.Fill(0)
	for i := range f.SampleCount {
		f.SampleCount[i] = 0
		f.Active[i] = 1
	}
	f.Iteration = 0
}

// Index returns the flat pixel index of (x, y)
func (f *Frame) Index(x, y int) int {
	return y*f.Width + x
}

// ActivePixels returns how many pixels are still sampling
func (f *Frame) ActivePixels() int {
	n := 0
	for _, a := range f.Active {
		if a != 0 {
			n++
		}
	}
	return n
}

// Resolve returns the averaged image. Pixels without samples are black.
func (f *Frame) Resolve() *core.Image {
	img := f.Color.Clone()
	img.Divide(f.SampleCount)
	return img
}

// Mask returns the active mask as a grayscale image in [0,255]
func (f *Frame) Mask() *core.Image {
	img := core.NewImage(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Set(x, y, core.Splat(f.Active[f.Index(x, y)]*255))
		}
	}
	return img
}
