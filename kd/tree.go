package kd

import "fmt"

// Tree is an immutable spatial index over a fixed point set. Every point of
// the input appears in exactly one leaf; internal nodes record the splitting
// hyperplanes chosen during construction. A tree built from an empty set has
// a nil root. Once New returns, the tree is safe for any number of
// concurrent readers.
type Tree struct {
	root   Node
	points []Point
	dims   int
}

// New builds a tree over the given point set. Points are partitioned
// recursively on the axis of widest coordinate range at the lower median,
// with coordinates <= the median going left and the rest going right. An
// empty input yields an empty tree; points of inconsistent dimensionality
// fail with ErrDimensionMismatch.
func New(points []Point) (*Tree, error) {
	t := &Tree{points: append([]Point(nil), points...)}
	if len(t.points) == 0 {
		return t, nil
	}
	t.dims = len(t.points[0])
	if t.dims == 0 {
		return nil, fmt.Errorf("%w: points have no coordinates", ErrDimensionMismatch)
	}
	for i, p := range t.points {
		if len(p) != t.dims {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, want %d", ErrDimensionMismatch, i, len(p), t.dims)
		}
	}
	indices := make([]int, len(t.points))
	for i := range indices {
		indices[i] = i
	}
	root, err := t.build(indices)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// Len returns the number of indexed points.
func (t *Tree) Len() int { return len(t.points) }

// Dims returns the dimensionality shared by all indexed points, 0 for an
// empty tree.
func (t *Tree) Dims() int { return t.dims }

// Root returns the root node, nil for an empty tree.
func (t *Tree) Root() Node { return t.root }

// Point returns the indexed point at position i of the original set.
func (t *Tree) Point(i int) Point { return t.points[i] }

func (t *Tree) build(indices []int) (Node, error) {
	if len(indices) == 1 {
		return &Leaf{PointIndex: indices[0]}, nil
	}
	subset := make([]Point, len(indices))
	for i, idx := range indices {
		subset[i] = t.points[idx]
	}
	axis, err := AxisOfHighestVariance(subset)
	if err != nil {
		return nil, err
	}
	median, err := MedianValueInAxis(subset, axis)
	if err != nil {
		return nil, err
	}

	left, right := partition(t.points, indices, axis, median)
	if len(right) == 0 {
		// The lower median coincides with the axis maximum, e.g. values
		// [1,2,2,2]. Lower the split to the largest coordinate strictly below
		// the median so both sides shrink and the <=/> rule still holds.
		if below, ok := largestBelow(subset, axis, median); ok {
			median = below
			left, right = partition(t.points, indices, axis, median)
		} else {
			// Zero range on the widest axis: every remaining point is
			// identical on every axis. Split by original order so
			// construction always terminates.
			half := len(indices) / 2
			left, right = indices[:half], indices[half:]
		}
	}

	lc, err := t.build(left)
	if err != nil {
		return nil, err
	}
	rc, err := t.build(right)
	if err != nil {
		return nil, err
	}
	return &Internal{Plane: Hyperplane{Axis: axis, Value: median}, Left: lc, Right: rc}, nil
}

// partition splits indices by the <=/> rule on the given axis and value,
// preserving relative order within each side.
func partition(points []Point, indices []int, axis int, value float32) (left, right []int) {
	for _, idx := range indices {
		if points[idx][axis] <= value {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return left, right
}

// largestBelow returns the largest coordinate on axis that is strictly less
// than limit, and whether any such coordinate exists.
func largestBelow(points []Point, axis int, limit float32) (float32, bool) {
	var best float32
	found := false
	for _, p := range points {
		if v := p[axis]; v < limit && (!found || v > best) {
			best = v
			found = true
		}
	}
	return best, found
}
