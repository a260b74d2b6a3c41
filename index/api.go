package index

// Match is a single nearest-neighbor result.
type Match struct {
	// ID is the identifier the point was registered with at build time.
	ID string

	// Distance is the Euclidean distance from the query to the match.
	Distance float64
}

// Index defines a generic spatial index with basic lifecycle methods:
// building from (id, point) pairs, exact nearest-neighbor queries, and
// binary serialization of the underlying point set.
type Index interface {
	// Build constructs the index from the given ids and points. ids and
	// points must have the same length, and all points the same
	// dimensionality. Building from empty input resets the index.
	Build(ids []string, points [][]float32) error

	// Nearest returns the stored point closest to the query, or nil when the
	// index is empty. The query must match the indexed dimensionality.
	Nearest(query []float32) (*Match, error)

	// MarshalBinary serializes the indexed point set into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized point set.
	UnmarshalBinary(data []byte) error
}
