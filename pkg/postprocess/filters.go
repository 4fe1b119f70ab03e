package postprocess

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// Downsample halves the image size (rounding up) by averaging 2x2 blocks.
// Reads past the edge repeat the border pixel.
func Downsample(img *core.Image) *core.Image {
	out := core.NewImage((img.Width+1)/2, (img.Height+1)/2)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := img.At(2*x, 2*y).
				Add(img.At(2*x+1, 2*y)).
				Add(img.At(2*x, 2*y+1)).
				Add(img.At(2*x+1, 2*y+1))
			out.Set(x, y, c.Multiply(0.25))
		}
	}
	return out
}

// Upsample doubles the image size with bilinear interpolation
func Upsample(img *core.Image) *core.Image {
	out := core.NewImage(img.Width*2, img.Height*2)
	for y := 0; y < out.Height; y++ {
		_, fy := math.Modf(float64(y) / 2)
		for x := 0; x < out.Width; x++ {
			_, fx := math.Modf(float64(x) / 2)
			sx, sy := x/2, y/2

			top := img.At(sx, sy).Lerp(img.At(sx+1, sy), fx)
			bottom := img.At(sx, sy+1).Lerp(img.At(sx+1, sy+1), fx)
			out.Set(x, y, top.Lerp(bottom, fy))
		}
	}
	return out
}

// Resize crops or pads the image to width x height, anchored at the top-left
// corner. Padding repeats the border pixels.
func Resize(img *core.Image, width, height int) *core.Image {
	if img.Width == width && img.Height == height {
		return img.Clone()
	}
	out := core.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// Blur applies a separable kernel horizontally then vertically. Taps that
// fall outside the image are dropped and the remaining weights
// renormalized. Each pass clamps to [0,255].
func Blur(img *core.Image, kernel []float64) *core.Image {
	if len(kernel) == 0 {
		return img.Clone()
	}
	return blurPass(blurPass(img, kernel, 1, 0), kernel, 0, 1)
}

func blurPass(img *core.Image, kernel []float64, dx, dy int) *core.Image {
	out := core.NewImage(img.Width, img.Height)
	r := len(kernel) / 2
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var color core.Vec3
			weights := 0.0
			for o := -r; o <= r; o++ {
				sx, sy := x+o*dx, y+o*dy
				if sx < 0 || sx >= img.Width || sy < 0 || sy >= img.Height {
					continue
				}
				w := kernel[r+o]
				color = color.Add(img.At(sx, sy).Multiply(w))
				weights += w
			}
			if weights != 0 {
				color = color.Multiply(1 / weights)
			}
			out.Set(x, y, color.Clamp(0, 255))
		}
	}
	return out
}
