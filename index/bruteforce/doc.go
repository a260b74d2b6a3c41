// Package bruteforce provides a spatial index that answers nearest-neighbor
// queries by scanning every stored point. It is the reference oracle that
// tree-based indexes are validated against, and it owns the compact binary
// point-set format shared by all indexes in this module.
package bruteforce
