package scene

import (
	"math/rand"
	"testing"

	"github.com/wrenfield/gopathtracer/pkg/core"
	"github.com/wrenfield/gopathtracer/pkg/geometry"
	"github.com/wrenfield/gopathtracer/pkg/material"
)

func TestEmptySceneNeverHits(t *testing.T) {
	sc := NewScene()
	sc.Build()

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if _, ok := sc.SceneHit(ray); ok {
		t.Errorf("expected empty scene to never report a hit")
	}
	if sc.Root() != nil {
		t.Errorf("expected nil BVH root for empty scene")
	}
	if sc.HasLight {
		t.Errorf("expected empty scene to have no light")
	}
}

func TestSingleDiffuseTriangleNoLight(t *testing.T) {
	sc := NewScene()
	matID := sc.AddMaterial(material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), core.Vec3{}, material.Diffuse, 1.5))
	sc.AddTriangle(geometry.NewTriangle(
		core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5), matID,
	))
	sc.Build()

	if sc.HasLight {
		t.Errorf("expected no light to be detected when no material emits")
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -0.3, -5).Normalize())
	if _, ok := sc.SceneHit(ray); !ok {
		t.Errorf("expected ray toward triangle center to hit")
	}
}

func TestDetectLightOneTriangle(t *testing.T) {
	sc := NewScene()
	lightMat := sc.AddMaterial(material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), material.Diffuse, 1.5))
	p1, p2, p3 := core.NewVec3(-1, 5, -1), core.NewVec3(1, 5, -1), core.NewVec3(1, 5, 1)
	sc.AddTriangle(geometry.NewTriangle(p1, p2, p3, lightMat))
	sc.Build()

	if !sc.HasLight {
		t.Fatalf("expected a single emissive triangle to be detected as the light")
	}
	if !sc.LightVertex.Equals(p1) {
		t.Errorf("LightVertex: got %v, want %v", sc.LightVertex, p1)
	}
	if sc.LightArea <= 0 {
		t.Errorf("expected positive LightArea, got %v", sc.LightArea)
	}
}

func TestDetectLightTwoTrianglesFormRectangle(t *testing.T) {
	sc := NewScene()
	lightMat := sc.AddMaterial(material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), material.Diffuse, 1.5))

	p1 := core.NewVec3(-1, 5, -1)
	p2 := core.NewVec3(1, 5, -1)
	p3 := core.NewVec3(1, 5, 1)
	p4 := core.NewVec3(-1, 5, 1)

	sc.AddTriangle(geometry.NewTriangle(p1, p2, p3, lightMat))
	sc.AddTriangle(geometry.NewTriangle(p1, p3, p4, lightMat))
	sc.Build()

	if !sc.HasLight {
		t.Fatalf("expected two coplanar emissive triangles to be detected as a rectangle light")
	}
	wantCenter := core.NewVec3(0, 5, 0)
	if !sc.LightVertex.Equals(wantCenter) {
		t.Errorf("rectangle light center: got %v, want %v", sc.LightVertex, wantCenter)
	}
	wantArea := 4.0
	if sc.LightArea < wantArea-1e-6 || sc.LightArea > wantArea+1e-6 {
		t.Errorf("rectangle light area: got %v, want %v", sc.LightArea, wantArea)
	}
}

func TestDetectLightThreeTrianglesNoLight(t *testing.T) {
	sc := NewScene()
	lightMat := sc.AddMaterial(material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), material.Diffuse, 1.5))
	for i := 0; i < 3; i++ {
		offset := float64(i) * 3
		sc.AddTriangle(geometry.NewTriangle(
			core.NewVec3(offset-1, 5, -1), core.NewVec3(offset+1, 5, -1), core.NewVec3(offset, 5, 1), lightMat,
		))
	}
	sc.Build()

	if sc.HasLight {
		t.Errorf("expected three emissive triangles (not a pair) to leave hasLight false")
	}
}

func TestSceneHitMatchesBruteForce(t *testing.T) {
	sc := NewScene()
	matID := sc.AddMaterial(material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, material.Diffuse, 1.5))

	sc.AddSphere(geometry.NewSphere(core.NewVec3(-3, 0, -10), 1, matID))
	sc.AddSphere(geometry.NewSphere(core.NewVec3(3, 0, -10), 1, matID))
	for i := 0; i < 20; i++ {
		x := float64(i%5) - 2
		y := float64(i/5) - 2
		sc.AddTriangle(geometry.NewTriangle(
			core.NewVec3(x-0.4, y-0.4, -8), core.NewVec3(x+0.4, y-0.4, -8), core.NewVec3(x, y+0.4, -8), matID,
		))
	}
	sc.Build()

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, 0)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, -1).Normalize()
		ray := core.NewRay(origin, direction)

		bvhHit, bvhOK := sc.SceneHit(ray)
		bruteHit, bruteOK := sc.HitBruteForce(ray, core.RayEpsilon, core.MaxDist)

		if bvhOK != bruteOK {
			t.Fatalf("BVH/brute-force disagree on hit/miss for ray %v: bvh=%v brute=%v", ray, bvhOK, bruteOK)
		}
		if bvhOK && (bvhHit.T < bruteHit.T-1e-9 || bvhHit.T > bruteHit.T+1e-9) {
			t.Errorf("BVH/brute-force disagree on t for ray %v: bvh=%v brute=%v", ray, bvhHit.T, bruteHit.T)
		}
	}
}
