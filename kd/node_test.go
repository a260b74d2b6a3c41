package kd

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	a := &Internal{
		Plane: Hyperplane{Axis: 0, Value: 5},
		Left:  &Leaf{PointIndex: 0},
		Right: &Leaf{PointIndex: 1},
	}
	b := &Internal{
		Plane: Hyperplane{Axis: 0, Value: 5},
		Left:  &Leaf{PointIndex: 0},
		Right: &Leaf{PointIndex: 1},
	}
	if !Equal(a, b) {
		t.Fatal("structurally identical trees reported unequal")
	}

	b.Right = &Leaf{PointIndex: 2}
	if Equal(a, b) {
		t.Fatal("trees with differing leaves reported equal")
	}
	if Equal(a, a.Left) {
		t.Fatal("internal node reported equal to a leaf")
	}
	if !Equal(nil, nil) {
		t.Fatal("Equal(nil, nil) = false")
	}
	if Equal(a, nil) {
		t.Fatal("Equal(node, nil) = true")
	}
}

func TestNodeString(t *testing.T) {
	n := &Internal{
		Plane: Hyperplane{Axis: 1, Value: 2.5},
		Left:  &Leaf{PointIndex: 3},
		Right: &Leaf{PointIndex: 4},
	}
	s := n.String()
	for _, want := range []string{"axis: 1", "value: 2.5", "leaf{point: 3}", "leaf{point: 4}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
