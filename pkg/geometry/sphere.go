package geometry

import (
	"math"

	"github.com/wrenfield/gopathtracer/pkg/core"
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int
}

// NewSphere creates a Sphere.
func NewSphere(center core.Vec3, radius float64, materialID int) Sphere {
	return Sphere{Center: center, Radius: radius, MaterialID: materialID}
}

// Centroid returns the sphere's center.
func (s Sphere) Centroid() core.Vec3 {
	return s.Center
}

// BoundingBox returns the exact [center-radius, center+radius] box; unlike
// triangles, spheres are not inflated by epsilon.
func (s Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Hit implements the standard half-b quadratic sphere test.
func (s Sphere) Hit(ray core.Ray, minDist, maxDist float64) (core.HitRecord, bool) {
	originToCenter := s.Center.Subtract(ray.Origin)
	a := ray.Direction.Dot(ray.Direction)
	halfB := originToCenter.Dot(ray.Direction)
	c := originToCenter.Dot(originToCenter) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtDisc := math.Sqrt(discriminant)

	dist := (halfB - sqrtDisc) / a
	if dist < minDist || dist > maxDist {
		dist = (halfB + sqrtDisc) / a
		if dist < minDist || dist > maxDist {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(dist)
	return core.HitRecord{
		T:          dist,
		Point:      point,
		Normal:     point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		MaterialID: s.MaterialID,
	}, true
}
