package kd

import (
	"fmt"
	"math"

	"github.com/viant/vec/search"
)

// Distance returns the Euclidean distance between two points of equal
// dimensionality.
func Distance(p1, p2 Point) (float64, error) {
	if len(p1) != len(p2) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(p1), len(p2))
	}
	return float64(search.Float32s(p1).EuclideanDistance(search.Float32s(p2))), nil
}

// PlaneDistance returns the distance from a point to the closest location on
// an axis-aligned hyperplane: |p[axis] - value|. Because the metric ignores
// every axis except the split axis, it is a strict lower bound on the
// distance from p to any point on the far side of the plane, which is what
// makes query-time pruning exact.
func PlaneDistance(p Point, plane Hyperplane) (float64, error) {
	if len(p) <= plane.Axis {
		return 0, fmt.Errorf("%w: axis %d out of range for %d-dimensional point", ErrDimensionMismatch, plane.Axis, len(p))
	}
	return math.Abs(float64(p[plane.Axis]) - float64(plane.Value)), nil
}
