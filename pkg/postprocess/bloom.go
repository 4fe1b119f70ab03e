package postprocess

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/log"
)

var logger = log.New("postprocess")

// DefaultKernel is an 11-tap Gaussian used to blur each mip level
var DefaultKernel = []float64{
	0.00391, 0.01018, 0.02459, 0.04947, 0.08553,
	0.12066,
	0.08553, 0.04947, 0.02459, 0.01018, 0.00391,
}

// BloomConfig controls the glow added around bright pixels. Values are in
// the renderer's [0,255] color scale.
type BloomConfig struct {
	Threshold float64   // Brightness where glow starts
	Clamp     float64   // Upper bound applied after thresholding
	Strength  float64   // Scale applied before tone mapping
	Falloff   float64   // Weight ratio between successive mip levels
	Kernel    []float64 // Blur kernel, odd length
}

// DefaultBloomConfig returns the standard bloom settings
func DefaultBloomConfig() BloomConfig {
	return BloomConfig{
		Threshold: 127.5,
		Clamp:     8192,
		Strength:  0.5,
		Falloff:   1,
		Kernel:    DefaultKernel,
	}
}

// SoftThreshold removes brightness below threshold with a quadratic knee
// of width 510-2*threshold
func SoftThreshold(x, threshold float64) float64 {
	knee := 510 - 2*threshold
	switch {
	case x < threshold:
		return 0
	case x < threshold+knee:
		return (x - threshold) * (x - threshold) / (2 * knee)
	default:
		return x - threshold - knee/2
	}
}

// ACES is a rational fit of the ACES filmic tone curve
func ACES(x float64) float64 {
	a := x*(x+0.0245786) - 0.000090537
	b := x*0.983729 + 0.4329510
	return a / b
}

// Linearize maps a [0,255] value through gamma 2.2 and clamps it
func Linearize(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	x = max(0, min(1, x/255))
	return math.Pow(x, 1/2.2) * 255
}

// Bloom computes the glow layer for img. The result has img's size and is
// meant to be added with Compose.
func Bloom(img *core.Image, cfg BloomConfig) *core.Image {
	if img.Width == 0 || img.Height == 0 {
		return img.Clone()
	}

	bloom := img.Clone()
	bloom.Apply(func(x float64) float64 { return SoftThreshold(x, cfg.Threshold) })
	bloom.Clamp(0, cfg.Clamp)
	bloom = Downsample(bloom)

	levels := int(math.Log2(float64(bloom.Height))) - 1
	mips := []*core.Image{bloom}
	for i := 0; i < levels-1; i++ {
		bloom = Blur(Downsample(bloom), cfg.Kernel)
		mips = append(mips, bloom)
	}
	logger.Debugf("bloom: %d mip levels from %dx%d", len(mips), img.Width, img.Height)

	// Walk back up the chain, adding each finer level once with its weight
	weight := 1.0
	total := weight
	for i := len(mips) - 2; i >= 0; i-- {
		weight *= cfg.Falloff
		level := mips[i]
		bloom = Resize(Upsample(bloom), level.Width, level.Height)
		for p, v := range level.Pix {
			bloom.Pix[p] += v * weight
		}
		total += weight
	}

	bloom.Scale(core.Splat(cfg.Strength / total))
	bloom.Apply(ACES)
	bloom = Upsample(bloom)
	bloom.Clamp(0, 255)
	return Resize(bloom, img.Width, img.Height)
}

// Compose adds bloom to img and converts the result to display values
func Compose(img, bloom *core.Image) *core.Image {
	out := img.Clone()
	if bloom != nil {
		out.AddImage(bloom)
	}
	out.Apply(Linearize)
	return out
}
