// Package kdtree adapts the kd package to the generic index interface. It
// builds a kd-tree over the registered points, answers exact
// nearest-neighbor queries with pruned search, and serializes through the
// shared brute-force point-set format, rebuilding the tree on load.
package kdtree
