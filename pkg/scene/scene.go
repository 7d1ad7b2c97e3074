// Package scene assembles triangles, spheres and materials into a single
// renderable scene: it owns the BVH over all primitives, the scene-wide
// bounding box used for auto-framing, and the single representative light
// vertex used for next-event estimation.
package scene

import (
	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/geometry"
	"github.com/wrenfield/gopathtracer/pkg/material"
)

// kind tags used in the BVH's (Kind, Index) leaf dispatch.
const (
	kindTriangle = 0
	kindSphere   = 1
)

// Scene owns every primitive and material in the world, plus the
// acceleration structure and light data derived from them once Build is
// called.
type Scene struct {
	Triangles []geometry.Triangle
	Spheres   []geometry.Sphere
	Materials []material.Material

	BoundingBox core.AABB
	root        *core.BVHNode

	HasLight      bool
	LightVertex   core.Vec3
	LightEdge1    core.Vec3
	LightEdge2    core.Vec3
	LightNormal   core.Vec3
	LightArea     float64
	LightEmission core.Vec3
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddTriangle appends a triangle to the scene and returns its index.
func (s *Scene) AddTriangle(t geometry.Triangle) int {
	s.Triangles = append(s.Triangles, t)
	return len(s.Triangles) - 1
}

// AddSphere appends a sphere to the scene and returns its index.
func (s *Scene) AddSphere(sp geometry.Sphere) int {
	s.Spheres = append(s.Spheres, sp)
	return len(s.Spheres) - 1
}

// AddMaterial appends a material to the scene and returns its index,
// for use as a primitive's MaterialID.
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// Build computes the scene bounding box, builds the BVH over every
// triangle and sphere (triangles first, then spheres, matching their
// declaration order), and detects the scene's representative light.
// Build must be called once after all primitives are added and before
// any Hit call.
func (s *Scene) Build() {
	s.buildBoundingBox()
	s.buildBVH()
	s.detectLight()
}

func (s *Scene) buildBoundingBox() {
	first := true
	var box core.AABB
	for _, t := range s.Triangles {
		if first {
			box, first = core.NewAABBFromPoints(t.P1, t.P2, t.P3), false
		} else {
			box = box.Union(core.NewAABBFromPoints(t.P1, t.P2, t.P3))
		}
	}
	for _, sp := range s.Spheres {
		if first {
			box, first = sp.BoundingBox(), false
		} else {
			box = box.Union(sp.BoundingBox())
		}
	}
	s.BoundingBox = box
}

func (s *Scene) buildBVH() {
	items := make([]core.BVHItem, 0, len(s.Triangles)+len(s.Spheres))
	for i, t := range s.Triangles {
		items = append(items, core.BVHItem{Bounds: t.BoundingBox(), Centroid: t.Centroid(), Kind: kindTriangle, Index: i})
	}
	for i, sp := range s.Spheres {
		items = append(items, core.BVHItem{Bounds: sp.BoundingBox(), Centroid: sp.Centroid(), Kind: kindSphere, Index: i})
	}
	s.root = core.BuildBVH(items)
}

// Root exposes the built BVH root, chiefly for structural tests.
func (s *Scene) Root() *core.BVHNode {
	return s.root
}

// Hit finds the closest primitive intersection within (tMin, tMax] via
// the BVH, dispatching leaves back to the concrete triangle/sphere Hit
// methods.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if s.root == nil {
		return core.HitRecord{}, false
	}
	return s.root.Hit(ray, tMin, tMax, s.primitiveHit)
}

// SceneHit intersects ray against the whole scene using the standard
// near/far clip (RayEpsilon, MaxDist). This is the query the path tracer
// uses for its bounce rays; shadow rays call Hit with a far clip just short
// of the light.
func (s *Scene) SceneHit(ray core.Ray) (core.HitRecord, bool) {
	return s.Hit(ray, core.RayEpsilon, core.MaxDist)
}

func (s *Scene) primitiveHit(kind, index int, ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	switch kind {
	case kindTriangle:
		return s.Triangles[index].Hit(ray, tMin, tMax)
	case kindSphere:
		return s.Spheres[index].Hit(ray, tMin, tMax)
	default:
		return core.HitRecord{}, false
	}
}

// HitBruteForce finds the closest intersection by testing every sphere
// then every triangle linearly, with no acceleration structure. It exists
// to cross-check BVH traversal in tests and is never used by the
// renderer itself.
func (s *Scene) HitBruteForce(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	closest := tMax
	var best core.HitRecord
	hitAny := false

	for _, sp := range s.Spheres {
		if rec, ok := sp.Hit(ray, tMin, closest); ok {
			best, closest, hitAny = rec, rec.T, true
		}
	}
	for _, t := range s.Triangles {
		if rec, ok := t.Hit(ray, tMin, closest); ok {
			best, closest, hitAny = rec, rec.T, true
		}
	}
	return best, hitAny
}

// Material returns the material for the given material ID.
func (s *Scene) Material(id int) material.Material {
	return s.Materials[id]
}
