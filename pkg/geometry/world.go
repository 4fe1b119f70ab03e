package geometry

import (
	"fmt"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// Policy chooses how floor hits compete with body hits
type Policy int

const (
	// NearestHit returns whichever of floor and bodies is closest
	NearestHit Policy = iota
	// BodiesFirst only considers the floor when no body is hit
	BodiesFirst
)

func (p Policy) String() string {
	switch p {
	case NearestHit:
		return "nearest"
	case BodiesFirst:
		return "bodies-first"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name back into a Policy
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "nearest", "":
		return NearestHit, nil
	case "bodies-first":
		return BodiesFirst, nil
	default:
		return 0, fmt.Errorf("unknown intersection policy %q", name)
	}
}

// World is the set of shapes a ray is resolved against
type World struct {
	Bodies []Shape
	Floor  *Floor
	Policy Policy
}

// Intersect returns the closest hit along ray under the world's policy
func (w *World) Intersect(ray core.Ray) (HitInfo, bool) {
	var closest HitInfo
	found := false

	for _, body := range w.Bodies {
		hit, ok := body.Hit(ray)
		if ok && (!found || hit.T < closest.T) {
			closest = hit
			found = true
		}
	}

	if found && w.Policy == BodiesFirst {
		return closest, true
	}

	if hit, ok := w.Floor.Hit(ray); ok && (!found || hit.T < closest.T) {
		return hit, true
	}
	return closest, found
}

// Bounds returns the box enclosing every body. The floor is unbounded and
// not included.
func (w *World) Bounds() core.AABB {
	if len(w.Bodies) == 0 {
		return core.AABB{}
	}
	bounds := w.Bodies[0].BoundingBox()
	for _, body := range w.Bodies[1:] {
		bounds = bounds.Union(body.BoundingBox())
	}
	return bounds
}
