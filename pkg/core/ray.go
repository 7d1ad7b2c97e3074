package core

// Ray is a half-line with an origin and a direction. Traversal and
// intersection routines assume Direction is already normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	T          float64 // distance along the ray
	Point      Vec3    // intersection point
	Normal     Vec3    // unit outward normal
	MaterialID int     // index into Scene.Materials
}
