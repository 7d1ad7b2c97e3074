package geometry

import (
	"math"
	"testing"

	"github.com/wrenfield/gopathtracer/pkg/core"
)

func TestSphereHitFromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, 0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	hit, ok := sphere.Hit(ray, core.RayEpsilon, core.MaxDist)
	if !ok {
		t.Fatalf("expected ray through sphere center to hit")
	}
	if math.Abs(hit.T-4) > 1e-6 {
		t.Errorf("expected near-side t=4, got %v", hit.T)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("normal %v is not unit length", hit.Normal)
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if !hit.Normal.Equals(wantNormal) {
		t.Errorf("outward normal: got %v, want %v", hit.Normal, wantNormal)
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, 0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))
	if _, ok := sphere.Hit(ray, core.RayEpsilon, core.MaxDist); ok {
		t.Errorf("expected ray missing sphere to return no hit")
	}
}

func TestSphereHitFromInsideUsesFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, 0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	hit, ok := sphere.Hit(ray, core.RayEpsilon, core.MaxDist)
	if !ok {
		t.Fatalf("expected ray from inside sphere to hit the far wall")
	}
	if math.Abs(hit.T-2) > 1e-6 {
		t.Errorf("expected far-root t=2, got %v", hit.T)
	}
}

func TestSphereBoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, 0)
	box := sphere.BoundingBox()
	if !box.Min.Equals(core.NewVec3(-1, 0, 1)) || !box.Max.Equals(core.NewVec3(3, 4, 5)) {
		t.Errorf("BoundingBox: got min=%v max=%v", box.Min, box.Max)
	}
}
