package core

// Image is a linear RGB buffer of Width*Height pixels stored as three
// consecutive float64 channels per pixel in row-major order.
type Image struct {
	Width  int
	Height int
	Pix    []float64
}

// NewImage allocates a zeroed image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// index returns the offset of the first channel of (x, y)
func (img *Image) index(x, y int) int {
	return (y*img.Width + x) * 3
}

// At returns the color at (x, y). Out of range coordinates are clamped to the
// nearest edge pixel.
func (img *Image) At(x, y int) Vec3 {
	x = max(0, min(img.Width-1, x))
	y = max(0, min(img.Height-1, y))
	i := img.index(x, y)
	return Vec3{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

// Set writes the color at (x, y)
func (img *Image) Set(x, y int, c Vec3) {
	i := img.index(x, y)
	img.Pix[i] = c.X
	img.Pix[i+1] = c.Y
	img.Pix[i+2] = c.Z
}

// Add accumulates c into the pixel at (x, y)
func (img *Image) Add(x, y int, c Vec3) {
	i := img.index(x, y)
	img.Pix[i] += c.X
	img.Pix[i+1] += c.Y
	img.Pix[i+2] += c.Z
}

// Fill sets every channel to v
func (img *Image) Fill(v float64) {
	for i := range img.Pix {
		img.Pix[i] = v
	}
}

// Clone returns a deep copy
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Pix: make([]float64, len(img.Pix))}
	copy(out.Pix, img.Pix)
	return out
}

// Scale multiplies every pixel component-wise by s
func (img *Image) Scale(s Vec3) {
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] *= s.X
		img.Pix[i+1] *= s.Y
		img.Pix[i+2] *= s.Z
	}
}

// Clamp limits every channel to [minVal, maxVal]; NaN becomes minVal
func (img *Image) Clamp(minVal, maxVal float64) {
	for i, v := range img.Pix {
		img.Pix[i] = clampComponent(v, minVal, maxVal)
	}
}

// Apply replaces every channel value v with fn(v)
func (img *Image) Apply(fn func(float64) float64) {
	for i, v := range img.Pix {
		img.Pix[i] = fn(v)
	}
}

// AddImage adds other into img pixel by pixel over the overlapping region
func (img *Image) AddImage(other *Image) {
	w := min(img.Width, other.Width)
	h := min(img.Height, other.Height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Add(x, y, other.At(x, y))
		}
	}
}

// Divide divides each pixel by its sample count. Pixels with no samples
// become black.
func (img *Image) Divide(samples []int) {
	for p, n := range samples {
		i := p * 3
		if n == 0 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 0, 0
			continue
		}
		inv := 1.0 / float64(n)
		img.Pix[i] *= inv
		img.Pix[i+1] *= inv
		img.Pix[i+2] *= inv
	}
}
