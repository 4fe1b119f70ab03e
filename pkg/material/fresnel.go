package material

import "math"

// iorEpsilon treats two media as optically identical
const iorEpsilon = 1e-4

// Schlick approximates Fresnel reflectance for light crossing from a medium
// with index n1 into one with index n2 at the given incidence cosine.
// Matching indices never reflect.
func Schlick(cosTheta, n1, n2 float64) float64 {
	if math.Abs(n1-n2) < iorEpsilon {
		return 0
	}
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
