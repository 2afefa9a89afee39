// Package picking resolves pointer rays to registry entities. Intersection
// math mirrors the offline renderer: quadratic ray-sphere and slab-method
// ray-AABB tests, nearest positive hit wins.
package picking

import (
	"github.com/chewxy/math32"

	"scene-editor/internal/entity"
	"scene-editor/internal/visual"
)

const epsilon = 1e-5

// Ray is a pointer ray in world space. Direction is assumed normalized.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32
}

// Pick intersects the ray against every live entity's visual handle, including
// sub-nodes (a light's core and shell are both part of one handle), and
// returns the nearest hit's owning entity id. Hits on sub-nodes walk parent
// links to the handle root, whose owner back-reference names the entity. A
// miss returns (0, false); by convention the caller leaves the selection
// unchanged on a miss.
func Pick(reg *entity.Registry, ray Ray) (entity.ID, bool) {
	best := math32.Inf(1)
	var bestID entity.ID
	for e := range reg.All() {
		hitNode(e.Visual, ray, &best, &bestID)
	}
	return bestID, bestID != 0
}

// hitNode tests one node and recurses into its sub-nodes, keeping the nearest
// hit distance and its resolved owner.
func hitNode(n *visual.Node, ray Ray, best *float32, bestID *entity.ID) {
	if t, ok := intersect(n, ray); ok && t < *best {
		*best = t
		*bestID = entity.ID(n.Root().Owner)
	}
	for _, c := range n.Children() {
		hitNode(c, ray, best, bestID)
	}
}

// intersect returns the nearest positive ray parameter for the node's shape.
func intersect(n *visual.Node, ray Ray) (float32, bool) {
	switch n.Shape {
	case visual.ShapeSphere:
		return raySphere(ray, n.Position, n.Radius())
	case visual.ShapeBox:
		min, max := n.Bounds()
		return rayBox(ray, min, max)
	}
	return 0, false
}

// raySphere solves the quadratic |o + t*d - c|^2 = r^2 and returns the nearest
// root beyond epsilon.
func raySphere(ray Ray, center [3]float32, radius float32) (float32, bool) {
	oc := sub3(ray.Origin, center)
	a := dot3(ray.Direction, ray.Direction)
	b := 2 * dot3(oc, ray.Direction)
	c := dot3(oc, oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math32.Sqrt(disc)
	t := (-b - sqrtDisc) / (2 * a)
	if t < epsilon {
		t = (-b + sqrtDisc) / (2 * a)
		if t < epsilon {
			return 0, false
		}
	}
	return t, true
}

// rayBox is the slab method against an axis-aligned box. Rays parallel to a
// slab miss unless the origin lies within it.
func rayBox(ray Ray, min, max [3]float32) (float32, bool) {
	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)
	for i := 0; i < 3; i++ {
		if math32.Abs(ray.Direction[i]) < epsilon {
			if ray.Origin[i] < min[i] || ray.Origin[i] > max[i] {
				return 0, false
			}
			continue
		}
		invDir := 1 / ray.Direction[i]
		t0 := (min[i] - ray.Origin[i]) * invDir
		t1 := (max[i] - ray.Origin[i]) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = math32.Max(tNear, t0)
		tFar = math32.Min(tFar, t1)
		if tNear > tFar {
			return 0, false
		}
	}
	if tFar < epsilon {
		return 0, false
	}
	t := tNear
	if t < epsilon {
		t = tFar
	}
	if t < epsilon {
		return 0, false
	}
	return t, true
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
