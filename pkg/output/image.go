package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// ToRGBA converts an image in the [0,255] color scale to 8-bit RGBA.
// Values are clamped and truncated.
func ToRGBA(img *core.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y).Clamp(0, 255)
			out.SetRGBA(x, y, color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255})
		}
	}
	return out
}

// FromImage converts any decoded image to the [0,255] color scale
func FromImage(src image.Image) *core.Image {
	bounds := src.Bounds()
	img := core.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// RGBA returns uint32 in [0, 65535], 8-bit values scaled by 257
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			img.Set(x, y, core.NewVec3(float64(r)/257, float64(g)/257, float64(b)/257))
		}
	}
	return img
}

// WritePNG saves img as an 8-bit PNG, creating parent directories as needed
func WritePNG(path string, img *core.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, ToRGBA(img)); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// ReadPNG loads a PNG into the [0,255] color scale
func ReadPNG(path string) (*core.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	src, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(src), nil
}

// Scale resamples img to width x height with a Catmull-Rom filter
func Scale(img *core.Image, width, height int) *core.Image {
	if img.Width == width && img.Height == height {
		return img.Clone()
	}
	src := ToRGBA(img)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return FromImage(dst)
}
