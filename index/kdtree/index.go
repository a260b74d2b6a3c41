package kdtree

import (
	"fmt"

	"github.com/viant/kdindex/index"
	"github.com/viant/kdindex/index/bruteforce"
	"github.com/viant/kdindex/kd"
)

// Index answers exact nearest-neighbor queries with a kd-tree.
type Index struct {
	ids  []string
	tree *kd.Tree
}

// Build constructs the kd-tree from the given ids and points.
func (i *Index) Build(ids []string, points [][]float32) error {
	if len(ids) != len(points) {
		return fmt.Errorf("kdtree: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	pts := make([]kd.Point, len(points))
	for j, p := range points {
		pts[j] = kd.Point(p)
	}
	tree, err := kd.New(pts)
	if err != nil {
		return err
	}
	i.ids = append([]string(nil), ids...)
	i.tree = tree
	return nil
}

// Nearest runs the pruned tree search and resolves the matched point index
// back to its registered id. It returns nil when the index is empty.
func (i *Index) Nearest(query []float32) (*index.Match, error) {
	if i.tree == nil {
		return nil, nil
	}
	neighbor, err := i.tree.Nearest(kd.Point(query))
	if err != nil {
		return nil, err
	}
	if neighbor == nil {
		return nil, nil
	}
	return &index.Match{ID: i.ids[neighbor.Index], Distance: neighbor.Distance}, nil
}

// MarshalBinary serializes the point set using the brute-force format. The
// tree itself is never serialized; it is rebuilt from the points on load.
func (i *Index) MarshalBinary() ([]byte, error) {
	bf := &bruteforce.Index{}
	var points [][]float32
	if i.tree != nil {
		points = make([][]float32, i.tree.Len())
		for j := range points {
			points[j] = i.tree.Point(j)
		}
	}
	if err := bf.Build(i.ids, points); err != nil {
		return nil, err
	}
	return bf.MarshalBinary()
}

// UnmarshalBinary decodes the brute-force point-set format and rebuilds the
// kd-tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, points, err := bruteforce.Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, points)
}

// Ensure Index satisfies the interface.
var _ index.Index = (*Index)(nil)
