package core

import "sort"

// BVHItem is the transient per-primitive record the BVH builder consumes:
// the primitive's (already epsilon-inflated, for triangles) bounds, its
// centroid, and a caller-defined (Kind, Index) pair used to dispatch back
// to the owning geometry/material package. The BVH package never looks
// inside Kind/Index; it only carries them through to the leaves.
type BVHItem struct {
	Bounds   AABB
	Centroid Vec3
	Kind     int
	Index    int
}

// BVHNode is a node of the bounding-volume hierarchy. A node is a leaf
// iff both children are nil, in which case (Kind, Index) identify the
// single primitive it references.
type BVHNode struct {
	Bounds      AABB
	Left, Right *BVHNode
	Kind        int
	Index       int
}

// IsLeaf reports whether this node references a primitive directly.
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildBVH builds a BVH over items by recursively partitioning on the
// axis with the largest centroid-volume extent, splitting at the median
// index of a stable sort along that axis. Returns nil for an empty item
// list. The input slice is consumed in place (callers that need the
// original order should pass a copy).
func BuildBVH(items []BVHItem) *BVHNode {
	if len(items) == 0 {
		return nil
	}
	return buildBVHRange(items)
}

func buildBVHRange(items []BVHItem) *BVHNode {
	if len(items) == 1 {
		it := items[0]
		return &BVHNode{Bounds: it.Bounds, Kind: it.Kind, Index: it.Index}
	}

	var boundingVolume, centroidVolume AABB
	boundingVolume = items[0].Bounds
	centroidVolume = AABB{Min: items[0].Centroid, Max: items[0].Centroid}
	for _, it := range items[1:] {
		boundingVolume = boundingVolume.Union(it.Bounds)
		centroidVolume = centroidVolume.Union(AABB{Min: it.Centroid, Max: it.Centroid})
	}

	axis := longestCentroidAxis(centroidVolume)
	sort.SliceStable(items, func(i, j int) bool {
		return centroidComponent(items[i].Centroid, axis) < centroidComponent(items[j].Centroid, axis)
	})

	mid := len(items) / 2
	return &BVHNode{
		Bounds: boundingVolume,
		Left:   buildBVHRange(items[:mid]),
		Right:  buildBVHRange(items[mid:]),
		Kind:   -1,
		Index:  -1,
	}
}

// longestCentroidAxis picks the split axis per spec's tie-break: X wins
// if strictly greater than both Y and Z; else Y if strictly greater than
// both X and Z; otherwise Z (including the X/Y tie case).
func longestCentroidAxis(centroidVolume AABB) int {
	size := centroidVolume.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.X && size.Y > size.Z {
		return 1
	}
	return 2
}

func centroidComponent(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit traverses the BVH, calling primitiveHit(kind, index, ray, tMin, tMax)
// for each leaf whose bounding box the ray might intersect, and returns
// the closest hit in (tMin, tMax]. primitiveHit must return (hit, true)
// only for an accepted intersection within range.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64, primitiveHit func(kind, index int, ray Ray, tMin, tMax float64) (HitRecord, bool)) (HitRecord, bool) {
	if n == nil {
		return HitRecord{}, false
	}
	if !n.Bounds.Hit(ray) {
		return HitRecord{}, false
	}

	if n.IsLeaf() {
		return primitiveHit(n.Kind, n.Index, ray, tMin, tMax)
	}

	closest := tMax
	best, hitAny := n.Left.Hit(ray, tMin, closest, primitiveHit)
	if hitAny {
		closest = best.T
	}
	if rightHit, ok := n.Right.Hit(ray, tMin, closest, primitiveHit); ok {
		best, hitAny = rightHit, true
	}
	return best, hitAny
}

// CountLeavesAndInterior walks the tree and reports the number of leaf
// and interior nodes, used by BVH structural property tests.
func (n *BVHNode) CountLeavesAndInterior() (leaves, interior int) {
	if n == nil {
		return 0, 0
	}
	if n.IsLeaf() {
		return 1, 0
	}
	leftLeaves, leftInterior := n.Left.CountLeavesAndInterior()
	rightLeaves, rightInterior := n.Right.CountLeavesAndInterior()
	return leftLeaves + rightLeaves, leftInterior + rightInterior + 1
}
