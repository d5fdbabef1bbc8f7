package physics

import "math"

type Ray struct {
	Origin    Vec3
	Direction Vec3
}

type Hit struct {
	Point    Vec3
	Distance float64
}

// Raycaster answers ray queries against the host's colliders.
type Raycaster interface {
	Raycast(ray Ray, maxDistance float64) (Hit, bool)
}

// GroundPlane is an infinite horizontal collider at Height.
type GroundPlane struct {
	Height float64
}

func (g GroundPlane) Raycast(ray Ray, maxDistance float64) (Hit, bool) {
	length := ray.Direction.Len()
	if length == 0 || maxDistance < 0 {
		return Hit{}, false
	}
	dir := ray.Direction.Mul(1 / length)
	if math.Abs(dir.Y()) < 1e-12 {
		return Hit{}, false
	}
	d := (g.Height - ray.Origin.Y()) / dir.Y()
	if d < 0 || d > maxDistance {
		return Hit{}, false
	}
	return Hit{Point: ray.Origin.Add(dir.Mul(d)), Distance: d}, true
}

// Colliders reports the nearest hit among several raycasters.
type Colliders []Raycaster

func (c Colliders) Raycast(ray Ray, maxDistance float64) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, r := range c {
		if r == nil {
			continue
		}
		if hit, ok := r.Raycast(ray, maxDistance); ok && (!found || hit.Distance < best.Distance) {
			best, found = hit, true
		}
	}
	return best, found
}
