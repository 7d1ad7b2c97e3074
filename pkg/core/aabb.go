package core

import "math"

// AABB is an axis-aligned bounding box stored as its min and max corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from explicit corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the smallest AABB containing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return AABB{Min: min, Max: max}
}

// Union returns an AABB that bounds both this box and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: NewVec3(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Expand returns this box inflated by amount on every face. Used to
// inflate triangle bounds by RayEpsilon so near-planar geometry doesn't
// self-miss at the slab test.
func (b AABB) Expand(amount float64) AABB {
	e := NewVec3(amount, amount, amount)
	return AABB{Min: b.Min.Subtract(e), Max: b.Max.Add(e)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the per-axis extent of the box.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Hit implements the slab test: for each axis compute the near/far
// intersection with that axis's pair of planes, track the running
// intersection of all three intervals, and accept iff the interval is
// non-empty and its far edge clears the epsilon near-clip.
func (b AABB) Hit(ray Ray) bool {
	tClose := math.Inf(-1)
	tFar := math.Inf(1)

	axisHit := func(min, max, origin, dir float64) bool {
		invDir := 1.0 / dir // division by zero yields +/-Inf, handled correctly by Min/Max below
		tLow := (min - origin) * invDir
		tHigh := (max - origin) * invDir
		tClose = math.Max(tClose, math.Min(tLow, tHigh))
		tFar = math.Min(tFar, math.Max(tLow, tHigh))
		return tClose <= tFar
	}

	if !axisHit(b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X) {
		return false
	}
	if !axisHit(b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y) {
		return false
	}
	if !axisHit(b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z) {
		return false
	}

	return tClose <= tFar && tFar >= RayEpsilon
}
