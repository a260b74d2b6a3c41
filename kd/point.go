package kd

// Point is an ordered sequence of float32 coordinates. All points indexed by
// one tree share the same dimensionality. The tree never mutates points and
// refers to them by their position in the originating point set.
type Point []float32

// Dims returns the number of coordinates in the point.
func (p Point) Dims() int { return len(p) }
