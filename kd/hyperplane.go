package kd

import "fmt"

// Hyperplane is an axis-aligned splitting plane. Points whose coordinate at
// Axis is <= Value fall on the left side of the split, greater values on the
// right. Axis is always less than the dimensionality of the indexed points.
type Hyperplane struct {
	Axis  int
	Value float32
}

func (h Hyperplane) String() string {
	return fmt.Sprintf("hyperplane{axis: %d, value: %v}", h.Axis, h.Value)
}
