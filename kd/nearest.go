package kd

import (
	"fmt"
	"math"
)

// Neighbor is the result of a nearest-neighbor query.
type Neighbor struct {
	// Index identifies the matched point in the original point set.
	Index int

	// Distance is the Euclidean distance between query and match.
	Distance float64
}

// Nearest returns the indexed point closest to the query, or nil for an
// empty tree. The query must have the tree's dimensionality.
//
// The search descends into the near side of every hyperplane first and
// backtracks into the far side only when the plane itself is closer than the
// best match found so far; anything beyond a farther plane is provably
// farther than the current best.
func (t *Tree) Nearest(query Point) (*Neighbor, error) {
	if t.root == nil {
		return nil, nil
	}
	if len(query) != t.dims {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d", ErrDimensionMismatch, len(query), t.dims)
	}
	best := &Neighbor{Index: -1, Distance: math.Inf(1)}
	if err := t.nearest(t.root, query, best); err != nil {
		return nil, err
	}
	return best, nil
}

func (t *Tree) nearest(n Node, query Point, best *Neighbor) error {
	switch node := n.(type) {
	case *Leaf:
		d, err := Distance(query, t.points[node.PointIndex])
		if err != nil {
			return err
		}
		if d < best.Distance {
			best.Index = node.PointIndex
			best.Distance = d
		}
	case *Internal:
		near, far := node.Left, node.Right
		if query[node.Plane.Axis] > node.Plane.Value {
			near, far = far, near
		}
		if err := t.nearest(near, query, best); err != nil {
			return err
		}
		margin, err := PlaneDistance(query, node.Plane)
		if err != nil {
			return err
		}
		if margin < best.Distance {
			return t.nearest(far, query, best)
		}
	}
	return nil
}
