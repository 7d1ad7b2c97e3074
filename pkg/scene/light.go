package scene

import (
	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/geometry"
)

// maxLightTriangles bounds how many of the light material's triangles
// detectLight inspects; only the first 8 are ever considered.
const maxLightTriangles = 8

// sharedVertexEpsilonSq is the squared-distance threshold below which two
// vertices are considered the same point when pairing up a rectangle's
// two triangles.
const sharedVertexEpsilonSq = 1e-8

// detectLight scans the scene's materials in order for the first one that
// emits, then inspects up to the first 8 triangles using that material to
// derive a single representative light vertex/edges/normal/area used for
// next-event estimation. Scenes with zero or more than two qualifying
// triangles have no detectable light (hasLight stays false).
func (s *Scene) detectLight() {
	s.HasLight = false

	lightMaterialID := -1
	for i, m := range s.Materials {
		if m.IsLight() {
			lightMaterialID = i
			break
		}
	}
	if lightMaterialID < 0 {
		return
	}

	var candidates []int
	for i, t := range s.Triangles {
		if t.MaterialID == lightMaterialID {
			candidates = append(candidates, i)
			if len(candidates) == maxLightTriangles {
				break
			}
		}
	}

	switch len(candidates) {
	case 1:
		t := s.Triangles[candidates[0]]
		s.LightEdge1 = t.P2.Subtract(t.P1)
		s.LightEdge2 = t.P3.Subtract(t.P1)
		s.LightVertex = t.P1
		s.LightNormal = t.Normal
		s.LightArea = 0.5 * s.LightEdge1.Cross(s.LightEdge2).Length()
		s.HasLight = true
	case 2:
		t0 := s.Triangles[candidates[0]]
		t1 := s.Triangles[candidates[1]]
		unique, ok := uniqueVertex(t0, t1)
		if !ok {
			return
		}
		edge1 := t0.P2.Subtract(t0.P1)
		edge2 := unique.Subtract(t0.P1)
		s.LightEdge1 = edge1
		s.LightEdge2 = edge2
		s.LightVertex = t0.P1.Add(edge1.Add(edge2).Multiply(0.5))
		s.LightNormal = t0.Normal
		s.LightArea = edge1.Cross(edge2).Length()
		s.HasLight = true
	default:
		return
	}

	s.LightEmission = s.Materials[lightMaterialID].Emission
}

// uniqueVertex returns the vertex of t1 that is not (within
// sharedVertexEpsilonSq) any vertex of t0, assuming exactly one such
// vertex exists (the pair forms a rectangle split along a shared edge).
func uniqueVertex(t0, t1 geometry.Triangle) (core.Vec3, bool) {
	for _, v := range [3]core.Vec3{t1.P1, t1.P2, t1.P3} {
		if !sharesVertex(t0, v) {
			return v, true
		}
	}
	return core.Vec3{}, false
}

func sharesVertex(t geometry.Triangle, v core.Vec3) bool {
	return squaredDistance(t.P1, v) < sharedVertexEpsilonSq ||
		squaredDistance(t.P2, v) < sharedVertexEpsilonSq ||
		squaredDistance(t.P3, v) < sharedVertexEpsilonSq
}

func squaredDistance(a, b core.Vec3) float64 {
	d := a.Subtract(b)
	return d.LengthSquared()
}
