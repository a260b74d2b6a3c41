// Package kd implements a kd-tree: a spatial index over fixed-dimensional
// float32 points built by recursively splitting on the axis of widest
// coordinate range at the lower median. It includes:
//   - Point, Hyperplane and the two-variant Node representation
//   - geometry utilities (per-axis min/max, axis selection, median selection,
//     point-to-point and point-to-hyperplane distances)
//   - tree construction and exact nearest-neighbor search with
//     hyperplane-bound pruning
//
// A built tree is immutable and safe for concurrent readers.
package kd
