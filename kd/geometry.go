package kd

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet reports an operation that requires at least one point but
	// was given none.
	ErrEmptySet = errors.New("kd: empty point set")

	// ErrDimensionMismatch reports two values that were expected to share a
	// coordinate count but did not.
	ErrDimensionMismatch = errors.New("kd: dimension mismatch")
)

// MinMax holds the smallest and largest coordinate observed on one axis.
type MinMax struct {
	Min float32
	Max float32
}

// MinMaxPerAxis returns the coordinate range of every axis across all
// points. It primes the ranges from the first point and refines them in a
// single pass, O(n*d).
func MinMaxPerAxis(points []Point) ([]MinMax, error) {
	if len(points) == 0 {
		return nil, ErrEmptySet
	}
	first := points[0]
	if len(first) == 0 {
		return nil, fmt.Errorf("%w: point has no coordinates", ErrDimensionMismatch)
	}
	ranges := make([]MinMax, len(first))
	for i, v := range first {
		ranges[i] = MinMax{Min: v, Max: v}
	}
	for _, p := range points[1:] {
		if len(p) != len(ranges) {
			return nil, fmt.Errorf("%w: point has %d dimensions, want %d", ErrDimensionMismatch, len(p), len(ranges))
		}
		for i, v := range p {
			if v < ranges[i].Min {
				ranges[i].Min = v
			}
			if v > ranges[i].Max {
				ranges[i].Max = v
			}
		}
	}
	return ranges, nil
}

// AxisOfHighestVariance returns the axis with the widest coordinate range
// |max - min| across all points. Ties resolve to the lowest axis index.
func AxisOfHighestVariance(points []Point) (int, error) {
	ranges, err := MinMaxPerAxis(points)
	if err != nil {
		return 0, err
	}
	axis := 0
	widest := ranges[0].Max - ranges[0].Min
	for i := 1; i < len(ranges); i++ {
		if r := ranges[i].Max - ranges[i].Min; r > widest {
			widest = r
			axis = i
		}
	}
	return axis, nil
}

// MedianValueInAxis returns the lower median of the points' coordinates on
// the given axis: the value at selection index n/2 of the ordered
// coordinates, never an average of the middle pair. Keeping this exact
// convention makes tree construction deterministic.
func MedianValueInAxis(points []Point, axis int) (float32, error) {
	if len(points) == 0 {
		return 0, ErrEmptySet
	}
	values := make([]float32, len(points))
	for i, p := range points {
		if len(p) <= axis {
			return 0, fmt.Errorf("%w: axis %d out of range for %d-dimensional point", ErrDimensionMismatch, axis, len(p))
		}
		values[i] = p[axis]
	}
	return selectNth(values, len(values)/2), nil
}

// selectNth returns the value that would land at index n if values were
// sorted. Quickselect with Hoare partitioning; values is reordered in place.
func selectNth(values []float32, n int) float32 {
	lo, hi := 0, len(values)-1
	for lo < hi {
		pivot := values[(lo+hi)/2]
		i, j := lo, hi
		for i <= j {
			for values[i] < pivot {
				i++
			}
			for values[j] > pivot {
				j--
			}
			if i <= j {
				values[i], values[j] = values[j], values[i]
				i++
				j--
			}
		}
		switch {
		case n <= j:
			hi = j
		case n >= i:
			lo = i
		default:
			// lo..j < pivot and i..hi > pivot, so values[n] == pivot.
			return values[n]
		}
	}
	return values[n]
}
