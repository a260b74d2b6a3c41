package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/viant/kdindex/index"
	"github.com/viant/kdindex/kd"
)

// Index is a linear-scan nearest-neighbor index over Euclidean distance.
type Index struct {
	ids []string
	pts [][]float32
	dim int
}

// Build loads ids and points after validating their shape.
func (i *Index) Build(ids []string, points [][]float32) error {
	if len(ids) != len(points) {
		return fmt.Errorf("bruteforce: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	if len(ids) == 0 {
		i.ids, i.pts, i.dim = nil, nil, 0
		return nil
	}
	dim := len(points[0])
	for j := range points {
		if len(points[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent point dims %d vs %d", len(points[j]), dim)
		}
	}
	i.ids = append([]string(nil), ids...)
	i.pts = append([][]float32(nil), points...)
	i.dim = dim
	return nil
}

// Nearest scans all points and returns the closest one, nil when empty.
func (i *Index) Nearest(query []float32) (*index.Match, error) {
	if i.dim == 0 || len(i.pts) == 0 {
		return nil, nil
	}
	if len(query) != i.dim {
		return nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	best := -1
	bestDist := math.Inf(1)
	for j := range i.pts {
		d, err := kd.Distance(query, i.pts[j])
		if err != nil {
			return nil, err
		}
		if d < bestDist {
			best = j
			bestDist = d
		}
	}
	return &index.Match{ID: i.ids[best], Distance: bestDist}, nil
}

// MarshalBinary stores: dim(uint32), n(uint32), then for each point:
// idLen(uint32), id bytes, coords(float32[dim]), all little-endian.
func (i *Index) MarshalBinary() ([]byte, error) {
	size := 8
	for _, id := range i.ids {
		size += 4 + len(id) + 4*i.dim
	}
	out := make([]byte, 8, size)
	binary.LittleEndian.PutUint32(out[0:4], uint32(i.dim))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(i.ids)))
	var scratch [4]byte
	for idx, id := range i.ids {
		binary.LittleEndian.PutUint32(scratch[:], uint32(len(id)))
		out = append(out, scratch[:]...)
		out = append(out, id...)
		for _, v := range i.pts[idx] {
			binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
			out = append(out, scratch[:]...)
		}
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes produced by MarshalBinary.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, points, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, points)
}

// Decode parses the shared binary point-set format. Other index
// implementations use it to rebuild their structures from serialized data.
func Decode(data []byte) (ids []string, points [][]float32, err error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	dim := int(binary.LittleEndian.Uint32(data[0:4]))
	n := int(binary.LittleEndian.Uint32(data[4:8]))
	off := 8
	if n == 0 {
		return nil, nil, nil
	}
	ids = make([]string, n)
	points = make([][]float32, n)
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idLen := int(binary.LittleEndian.Uint32(data[off:]))
		off += 4
		if off+idLen > len(data) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		ids[idx] = string(data[off : off+idLen])
		off += idLen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("bruteforce: truncated point")
		}
		pt := make([]float32, dim)
		for j := 0; j < dim; j++ {
			pt[j] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			off += 4
		}
		points[idx] = pt
	}
	return ids, points, nil
}

// Ensure Index satisfies the interface.
var _ index.Index = (*Index)(nil)
