package kd

import (
	"errors"
	"math/rand"
	"testing"
)

// collectLeaves gathers every leaf's point index in traversal order.
func collectLeaves(n Node, out *[]int) {
	switch node := n.(type) {
	case *Leaf:
		*out = append(*out, node.PointIndex)
	case *Internal:
		collectLeaves(node.Left, out)
		collectLeaves(node.Right, out)
	}
}

// checkHyperplanes verifies that every leaf under an internal node's left
// child is <= the split value on the split axis, and every leaf under the
// right child is greater.
func checkHyperplanes(t *testing.T, tree *Tree, n Node) {
	t.Helper()
	internal, ok := n.(*Internal)
	if !ok {
		return
	}
	var left, right []int
	collectLeaves(internal.Left, &left)
	collectLeaves(internal.Right, &right)
	for _, idx := range left {
		if v := tree.Point(idx)[internal.Plane.Axis]; v > internal.Plane.Value {
			t.Fatalf("left leaf %d has %v on axis %d, above split %v", idx, v, internal.Plane.Axis, internal.Plane.Value)
		}
	}
	for _, idx := range right {
		if v := tree.Point(idx)[internal.Plane.Axis]; v <= internal.Plane.Value {
			t.Fatalf("right leaf %d has %v on axis %d, not above split %v", idx, v, internal.Plane.Axis, internal.Plane.Value)
		}
	}
	checkHyperplanes(t, tree, internal.Left)
	checkHyperplanes(t, tree, internal.Right)
}

func TestNew_Empty(t *testing.T) {
	tree, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) failed: %v", err)
	}
	if tree.Root() != nil {
		t.Fatal("empty tree has a non-nil root")
	}
	if tree.Len() != 0 {
		t.Fatalf("empty tree Len = %d, want 0", tree.Len())
	}
}

func TestNew_SinglePoint(t *testing.T) {
	tree, err := New([]Point{{1, 2, 3}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	leaf, ok := tree.Root().(*Leaf)
	if !ok {
		t.Fatalf("root = %T, want *Leaf", tree.Root())
	}
	if leaf.PointIndex != 0 {
		t.Fatalf("leaf index = %d, want 0", leaf.PointIndex)
	}
}

func TestNew_ZeroDimPoints(t *testing.T) {
	if _, err := New([]Point{{}, {}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("New on zero-dimensional points error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := New([]Point{{}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("New on single zero-dimensional point error = %v, want ErrDimensionMismatch", err)
	}
}

func TestNew_InconsistentDims(t *testing.T) {
	_, err := New([]Point{{1, 2}, {3}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("New error = %v, want ErrDimensionMismatch", err)
	}
}

func TestNew_PartitionCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]Point, 257)
	for i := range points {
		points[i] = Point{rng.Float32() * 100, rng.Float32() * 100, rng.Float32() * 100}
	}
	tree, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var leaves []int
	collectLeaves(tree.Root(), &leaves)
	if len(leaves) != len(points) {
		t.Fatalf("tree has %d leaves, want %d", len(leaves), len(points))
	}
	seen := make(map[int]bool, len(leaves))
	for _, idx := range leaves {
		if idx < 0 || idx >= len(points) {
			t.Fatalf("leaf index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("leaf index %d appears more than once", idx)
		}
		seen[idx] = true
	}
}

func TestNew_HyperplaneConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := make([]Point, 100)
	for i := range points {
		points[i] = Point{rng.Float32() * 10, rng.Float32() * 10}
	}
	tree, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	checkHyperplanes(t, tree, tree.Root())
}

func TestNew_MedianEqualsMax(t *testing.T) {
	// Lower median of 1,2,2,2 is 2, the axis maximum; the split value must be
	// lowered so the right side is non-empty.
	points := []Point{{1}, {2}, {2}, {2}}
	tree, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var leaves []int
	collectLeaves(tree.Root(), &leaves)
	if len(leaves) != len(points) {
		t.Fatalf("tree has %d leaves, want %d", len(leaves), len(points))
	}
	root, ok := tree.Root().(*Internal)
	if !ok {
		t.Fatalf("root = %T, want *Internal", tree.Root())
	}
	if root.Plane.Value != 1 {
		t.Fatalf("root split value = %v, want lowered to 1", root.Plane.Value)
	}
}

func TestNew_AllIdenticalPoints(t *testing.T) {
	points := []Point{{3, 3}, {3, 3}, {3, 3}, {3, 3}, {3, 3}}
	tree, err := New(points)
	if err != nil {
		t.Fatalf("New on identical points failed: %v", err)
	}
	var leaves []int
	collectLeaves(tree.Root(), &leaves)
	if len(leaves) != len(points) {
		t.Fatalf("tree has %d leaves, want %d", len(leaves), len(points))
	}
}

func TestNew_Deterministic(t *testing.T) {
	points := []Point{{5, 1}, {2, 9}, {8, 4}, {3, 3}, {7, 7}}
	a, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !Equal(a.Root(), b.Root()) {
		t.Fatal("two builds of the same point set produced different trees")
	}
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	points := []Point{{4, 1}, {2, 8}, {9, 3}}
	want := [][]float32{{4, 1}, {2, 8}, {9, 3}}
	if _, err := New(points); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, p := range points {
		for j, v := range p {
			if v != want[i][j] {
				t.Fatalf("point %d mutated: %v, want %v", i, p, want[i])
			}
		}
	}
}
