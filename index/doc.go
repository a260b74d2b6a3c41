// Package index defines a minimal abstraction for spatial indexes that can
// be built from identified points, queried for the exact nearest neighbor,
// and round-tripped through a binary point-set encoding. Implementations in
// this module include a brute-force baseline and a kd-tree.
package index
