package core

import "testing"

func itemAt(x float64) BVHItem {
	p := NewVec3(x, 0, 0)
	return BVHItem{
		Bounds:   NewAABB(p.Subtract(NewVec3(0.1, 0.1, 0.1)), p.Add(NewVec3(0.1, 0.1, 0.1))),
		Centroid: p,
		Kind:     0,
		Index:    int(x),
	}
}

func TestBuildBVHEmpty(t *testing.T) {
	if root := BuildBVH(nil); root != nil {
		t.Errorf("expected nil root for empty input, got %v", root)
	}
}

func TestBuildBVHSingleItemIsLeaf(t *testing.T) {
	root := BuildBVH([]BVHItem{itemAt(0)})
	if root == nil || !root.IsLeaf() {
		t.Fatalf("expected a single leaf node, got %v", root)
	}
}

func TestBuildBVHLeafAndInteriorCounts(t *testing.T) {
	items := make([]BVHItem, 0, 17)
	for i := 0; i < 17; i++ {
		items = append(items, itemAt(float64(i)))
	}
	root := BuildBVH(items)
	leaves, interior := root.CountLeavesAndInterior()
	if leaves != 17 {
		t.Errorf("expected 17 leaves, got %d", leaves)
	}
	if interior != 16 {
		t.Errorf("expected 16 interior nodes, got %d", interior)
	}
}

func TestLongestCentroidAxisTieBreak(t *testing.T) {
	tests := []struct {
		name string
		size Vec3
		want int
	}{
		{"x strictly largest", NewVec3(3, 1, 1), 0},
		{"y strictly largest", NewVec3(1, 3, 1), 1},
		{"z strictly largest", NewVec3(1, 1, 3), 2},
		{"x and y tied falls to z", NewVec3(2, 2, 1), 2},
		{"all tied falls to z", NewVec3(1, 1, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := AABB{Min: Vec3{}, Max: tt.size}
			if got := longestCentroidAxis(box); got != tt.want {
				t.Errorf("longestCentroidAxis(%v) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestBVHRootBoundsContainAllPrimitives(t *testing.T) {
	items := []BVHItem{itemAt(0), itemAt(5), itemAt(-3), itemAt(10)}
	root := BuildBVH(items)

	if root.Bounds.Min.X > -3.1 || root.Bounds.Max.X < 10.1 {
		t.Errorf("root bounds %v do not contain all (epsilon-inflated) primitive bounds", root.Bounds)
	}
}

func TestBVHInteriorBoundsContainBothChildren(t *testing.T) {
	items := make([]BVHItem, 0, 9)
	for i := 0; i < 9; i++ {
		items = append(items, itemAt(float64(i)))
	}
	root := BuildBVH(items)

	var check func(n *BVHNode)
	check = func(n *BVHNode) {
		if n == nil || n.IsLeaf() {
			return
		}
		union := n.Left.Bounds.Union(n.Right.Bounds)
		if !union.Min.Equals(n.Bounds.Min) || !union.Max.Equals(n.Bounds.Max) {
			t.Errorf("interior node bounds %v do not equal union of children (%v)", n.Bounds, union)
		}
		check(n.Left)
		check(n.Right)
	}
	check(root)
}
