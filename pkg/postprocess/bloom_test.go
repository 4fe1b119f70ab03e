package postprocess

import (
	"math"
	"testing"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

func TestSoftThreshold(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{127, 0},
		{127.5, 0},
		{200, 72.5 * 72.5 / 510},
		{382.5, 127.5},
		{500, 245},
	}

	for _, tt := range tests {
		if got := SoftThreshold(tt.x, 127.5); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SoftThreshold(%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
}

func TestACES(t *testing.T) {
	if got := ACES(1); math.Abs(got-1.0244881/1.416680) > 1e-6 {
		t.Errorf("ACES(1) = %f", got)
	}
	prev := ACES(0)
	for x := 0.5; x < 300; x += 0.5 {
		v := ACES(x)
		if v <= prev {
			t.Fatalf("ACES not increasing at %f", x)
		}
		prev = v
	}
}

func TestLinearize(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{-5, 0},
		{255, 255},
		{300, 255},
		{63.75, math.Pow(0.25, 1/2.2) * 255},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Linearize(tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Linearize(%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
}

func TestBloom_DarkImage(t *testing.T) {
	img := uniformImage(64, 36, 100)

	out := Bloom(img, DefaultBloomConfig())

	if out.Width != 64 || out.Height != 36 {
		t.Fatalf("Expected 64x36, got %dx%d", out.Width, out.Height)
	}
	want := ACES(0)
	for i, v := range out.Pix {
		// ACES(0) is slightly negative and clamps to zero
		if v != max(0, want) {
			t.Fatalf("Channel %d = %f, want 0", i, v)
		}
	}
}

func TestBloom_UniformBrightImage(t *testing.T) {
	img := uniformImage(64, 32, 255)

	out := Bloom(img, DefaultBloomConfig())

	want := ACES(SoftThreshold(255, 127.5) * 0.5)
	for i, v := range out.Pix {
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("Channel %d = %f, want %f", i, v, want)
		}
	}
}

func TestBloom_OddSize(t *testing.T) {
	img := core.NewImage(33, 17)
	img.Set(16, 8, core.Splat(8000))

	out := Bloom(img, DefaultBloomConfig())

	if out.Width != 33 || out.Height != 17 {
		t.Fatalf("Expected 33x17, got %dx%d", out.Width, out.Height)
	}
	if out.At(16, 8).X <= 0 {
		t.Error("Expected glow around the bright pixel")
	}
	for _, v := range out.Pix {
		if v < 0 || v > 255 {
			t.Fatalf("Bloom value %f out of range", v)
		}
	}
}

func TestCompose(t *testing.T) {
	img := uniformImage(2, 2, 100)
	bloom := uniformImage(2, 2, 55)

	out := Compose(img, bloom)

	if got, want := out.At(0, 0).X, Linearize(155); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
	if img.At(0, 0).X != 100 {
		t.Error("Compose must not modify its input")
	}

	plain := Compose(img, nil)
	if got, want := plain.At(1, 1).X, Linearize(100); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f without bloom, got %f", want, got)
	}
}
