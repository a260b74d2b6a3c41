package kd

import "fmt"

// Node is a single vertex of a built tree. Exactly two variants exist: Leaf
// references one original point by index, Internal carries a splitting
// hyperplane and exclusively owns its two subtrees. Nodes are created
// bottom-up during construction and never mutated afterwards.
type Node interface {
	// IsLeaf reports whether the node is a *Leaf.
	IsLeaf() bool

	fmt.Stringer
}

// Leaf is a terminal node referencing exactly one point of the original set.
type Leaf struct {
	PointIndex int
}

// IsLeaf implements Node.
func (*Leaf) IsLeaf() bool { return true }

func (l *Leaf) String() string { return fmt.Sprintf("leaf{point: %d}", l.PointIndex) }

// Internal is a splitting node. Points with coordinate[Plane.Axis] <=
// Plane.Value are reachable via Left, the remainder via Right. Both children
// are non-nil and owned exclusively by this node.
type Internal struct {
	Plane Hyperplane
	Left  Node
	Right Node
}

// IsLeaf implements Node.
func (*Internal) IsLeaf() bool { return false }

func (n *Internal) String() string {
	return fmt.Sprintf("internal{%s, left: %s, right: %s}", n.Plane, n.Left, n.Right)
}

// Equal reports structural equality: two nodes are equal iff they have the
// same variant and all fields, recursively, match. It is a diagnostic helper
// for tests and debugging, not part of any behavioral contract.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.PointIndex == y.PointIndex
	case *Internal:
		y, ok := b.(*Internal)
		return ok && x.Plane == y.Plane && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}
