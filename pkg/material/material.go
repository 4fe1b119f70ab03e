package material

import (
	"fmt"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// Material describes how a surface tints, reflects, transmits and emits
// light. Materials are immutable after construction and may be shared by
// any number of shapes.
type Material struct {
	Color               core.Vec3 // Diffuse albedo
	Smoothness          float64   // Specular lobe sharpness, 1 = mirror
	SpecularProbability float64   // Chance a hit takes the specular branch
	SpecularColor       core.Vec3 // Tint applied on the specular branch
	Transparency        float64   // Chance a hit attempts refraction
	IndexOfRefraction   float64   // Refractive index of the body's interior
	Emission            core.Vec3 // Non-zero makes the material a light source
}

// Option configures optional material parameters
type Option func(*Material)

// WithSpecularProbability sets the chance that a hit is treated as specular
func WithSpecularProbability(p float64) Option {
	return func(m *Material) { m.SpecularProbability = p }
}

// WithSpecularColor overrides the specular tint, which otherwise follows Color
func WithSpecularColor(c core.Vec3) Option {
	return func(m *Material) { m.SpecularColor = c }
}

// WithTransparency makes the material transmissive with the given refractive index
func WithTransparency(transparency, ior float64) Option {
	return func(m *Material) {
		m.Transparency = transparency
		m.IndexOfRefraction = ior
	}
}

// WithEmission turns the material into a light source
func WithEmission(e core.Vec3) Option {
	return func(m *Material) { m.Emission = e }
}

// New creates a material. Specular probability defaults to 1 and the
// specular color defaults to color.
func New(color core.Vec3, smoothness float64, opts ...Option) *Material {
	m := &Material{
		Color:               color,
		Smoothness:          smoothness,
		SpecularProbability: 1,
		SpecularColor:       color,
		IndexOfRefraction:   1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Diffuse creates a fully rough material
func Diffuse(color core.Vec3) *Material {
	return New(color, 0)
}

// Mirror creates a perfect specular reflector
func Mirror(color core.Vec3) *Material {
	return New(color, 1)
}

// Glass creates a clear refractive material
func Glass(color core.Vec3, ior float64) *Material {
	return New(color, 1, WithTransparency(1, ior))
}

// Light creates an emissive material
func Light(emission core.Vec3) *Material {
	return New(core.Vec3{}, 0, WithSpecularProbability(0), WithEmission(emission))
}

// IsEmissive reports whether hitting this material ends a path
func (m *Material) IsEmissive() bool {
	return m.Emission.Length() > 0
}

// IsPerfectMirror reports whether every interaction with this material is a
// deterministic mirror reflection
func (m *Material) IsPerfectMirror() bool {
	return m.Smoothness == 1 && m.SpecularProbability == 1 && m.Transparency == 0
}

// Average returns a new material whose parameters are the mean of m and other
func (m *Material) Average(other *Material) *Material {
	return &Material{
		Color:               m.Color.Add(other.Color).Multiply(0.5),
		Smoothness:          (m.Smoothness + other.Smoothness) / 2,
		SpecularProbability: (m.SpecularProbability + other.SpecularProbability) / 2,
		SpecularColor:       m.SpecularColor.Add(other.SpecularColor).Multiply(0.5),
		Transparency:        (m.Transparency + other.Transparency) / 2,
		IndexOfRefraction:   (m.IndexOfRefraction + other.IndexOfRefraction) / 2,
		Emission:            m.Emission.Add(other.Emission).Multiply(0.5),
	}
}

// Validate checks that probabilities lie in [0,1] and the refractive index is positive
func (m *Material) Validate() error {
	if m.Smoothness < 0 || m.Smoothness > 1 {
		return fmt.Errorf("smoothness %g outside [0,1]", m.Smoothness)
	}
	if m.SpecularProbability < 0 || m.SpecularProbability > 1 {
		return fmt.Errorf("specular probability %g outside [0,1]", m.SpecularProbability)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %g outside [0,1]", m.Transparency)
	}
	if m.IndexOfRefraction <= 0 {
		return fmt.Errorf("index of refraction %g must be positive", m.IndexOfRefraction)
	}
	return nil
}
