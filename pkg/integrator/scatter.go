package integrator

import (
	"math"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/material"
)

// kEpsilon snaps near-grazing refraction to exactly grazing
const kEpsilon = 1e-6

// Reflect returns a direction leaving a surface with unit normal n. The
// mirror direction of dir is blended toward a cosine-like random lobe as
// smoothness drops from 1 to 0.
func Reflect(dir, n core.Vec3, smoothness float64, sampler core.Sampler) core.Vec3 {
	mirror := dir.Subtract(n.Multiply(2 * dir.Dot(n)))
	if mirror.Dot(n) < 0 {
		mirror = mirror.Negate()
	}
	diffuse := core.RandomUnitVector(sampler).Add(n).Normalize()
	out := diffuse.Lerp(mirror, smoothness).Normalize()
	if out.IsZero() {
		return n
	}
	return out
}

// Scatter picks the direction a path leaves a body in after a hit at a
// surface with outward normal. Transparent materials may refract, pushing
// or popping the walk's medium stack.
func Scatter(walk *Walk, normal core.Vec3, mat *material.Material, isSpecular bool) core.Vec3 {
	dir := walk.Ray.Direction
	sampler := walk.Sampler

	roughness := 0.0
	if isSpecular {
		roughness = mat.Smoothness
	}

	if sampler.Get1D() >= mat.Transparency {
		return Reflect(dir, normal, roughness, sampler)
	}

	n := normal
	entering := true
	n1, n2 := walk.CurrentIOR(), mat.IndexOfRefraction
	if dir.Dot(normal) > 0 {
		entering = false
		n = normal.Negate()
		n1, n2 = mat.IndexOfRefraction, walk.OuterIOR()
	}

	cosTheta := -dir.Dot(n)
	if sampler.Get1D() < material.Schlick(cosTheta, n1, n2) {
		return Reflect(dir, n, mat.Smoothness, sampler)
	}

	refracted, ok := Refract(dir, n, n1/n2, cosTheta)
	if !ok {
		// Total internal reflection
		return Reflect(dir, n, mat.Smoothness, sampler)
	}

	if entering {
		walk.Enter(mat.IndexOfRefraction)
	} else {
		walk.Exit()
	}

	lobe := core.RandomUnitVector(sampler).Add(n.Negate()).Normalize()
	out := lobe.Lerp(refracted, mat.SpecularProbability).Normalize()
	if out.IsZero() {
		return refracted
	}
	return out
}

// Refract bends dir through a surface with incident-facing unit normal n and
// relative index eta = n1/n2. It reports false on total internal reflection.
func Refract(dir, n core.Vec3, eta, cosTheta float64) (core.Vec3, bool) {
	perp := dir.Add(n.Multiply(cosTheta)).Multiply(eta)
	k := 1 - perp.LengthSquared()
	if math.Abs(k) < kEpsilon {
		k = 0
	}
	if k < 0 {
		return core.Vec3{}, false
	}
	parallel := n.Multiply(-math.Sqrt(k))
	return perp.Add(parallel).Normalize(), true
}
