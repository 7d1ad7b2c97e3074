// Package geometry implements the ray-intersection primitives: triangles
// (Möller-Trumbore) and spheres (analytic quadratic), plus their
// bounding boxes and centroids for BVH construction.
package geometry

import (
	"math"

	"github.com/wrenfield/gopathtracer/pkg/core"
)

// Triangle is defined by three vertices with precomputed edges and face
// normal, following the reference renderer's createTriangle.
type Triangle struct {
	P1, P2, P3 core.Vec3
	Edge1      core.Vec3 // P2 - P1
	Edge2      core.Vec3 // P3 - P1
	Normal     core.Vec3 // unit face normal, normalize(Edge1 x Edge2)
	MaterialID int
}

// NewTriangle builds a Triangle, precomputing its edges and face normal.
// Vertices are assumed non-degenerate and well-formed; the core never
// validates geometry handed to it by a loader.
func NewTriangle(p1, p2, p3 core.Vec3, materialID int) Triangle {
	edge1 := p2.Subtract(p1)
	edge2 := p3.Subtract(p1)
	return Triangle{
		P1: p1, P2: p2, P3: p3,
		Edge1:      edge1,
		Edge2:      edge2,
		Normal:     edge1.Cross(edge2).Normalize(),
		MaterialID: materialID,
	}
}

// Centroid returns the arithmetic mean of the triangle's three vertices.
func (t Triangle) Centroid() core.Vec3 {
	return t.P1.Add(t.P2).Add(t.P3).Multiply(1.0 / 3.0)
}

// BoundingBox returns the triangle's AABB inflated by RayEpsilon on every
// face, so a near-planar or axis-aligned triangle never self-misses at
// the BVH slab test.
func (t Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.P1, t.P2, t.P3).Expand(core.RayEpsilon)
}

// Hit implements the Möller-Trumbore ray-triangle test. On acceptance,
// the returned normal is always the triangle's stored face normal -
// never flipped toward the ray.
func (t Triangle) Hit(ray core.Ray, minDist, maxDist float64) (core.HitRecord, bool) {
	p := ray.Direction.Cross(t.Edge2)
	det := t.Edge1.Dot(p)

	if math.Abs(det) <= machineEpsilon {
		return core.HitRecord{}, false
	}
	inverse := 1.0 / det

	s := ray.Origin.Subtract(t.P1)
	u := s.Dot(p) * inverse
	if (u < 0 && math.Abs(u) > machineEpsilon) || (u > 1 && math.Abs(u-1) > machineEpsilon) {
		return core.HitRecord{}, false
	}

	q := s.Cross(t.Edge1)
	v := ray.Direction.Dot(q) * inverse
	if (v < 0 && math.Abs(v) > machineEpsilon) || (u+v > 1 && math.Abs(u+v-1) > machineEpsilon) {
		return core.HitRecord{}, false
	}

	dist := t.Edge2.Dot(q) * inverse
	if dist < minDist || dist > maxDist {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		T:          dist,
		Point:      ray.At(dist),
		Normal:     t.Normal,
		MaterialID: t.MaterialID,
	}, true
}

// machineEpsilon is the DBL_EPSILON slack the reference renderer uses to
// reject near-degenerate/near-boundary triangle hits.
const machineEpsilon = 2.220446049250313e-16
