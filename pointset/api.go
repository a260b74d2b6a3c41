package pointset

import "context"

// Set is a named, ordered collection of equally dimensioned points. The
// position of a point within Points is its stable identity: tree leaves and
// query results refer to it by index.
type Set struct {
	// Name identifies the set in durable storage.
	Name string

	// Dims is the dimensionality shared by every point in the set.
	Dims int

	// Points holds the coordinates, indexed 0..n-1.
	Points [][]float32
}

// Store defines durable storage for point sets. Implementations in this
// module use SQLite; loaded sets feed in-memory index construction.
type Store interface {
	// Save persists the set, replacing any stored set with the same name.
	Save(ctx context.Context, set Set) error

	// Load returns the stored set with the given name, in insertion order.
	Load(ctx context.Context, name string) (*Set, error)

	// Remove deletes the stored set with the given name.
	Remove(ctx context.Context, name string) error

	// Names lists the names of all stored sets.
	Names(ctx context.Context) ([]string, error)
}
