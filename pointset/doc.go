// Package pointset defines the point-set model and SQLite-backed utilities
// used by this module. It includes:
//   - Set model and Store interface
//   - SQLiteStore: durable storage for named point sets
//   - schema helpers to create the point_sets table
//   - point coordinate encoding (BLOB)
//
// Trees are never persisted; a stored set is loaded and the index rebuilt
// from its points.
package pointset
