package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterDistanceFunctions registers kd_l2 and kd_axis_dist with the driver
// so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
// kd_l2(a BLOB, b BLOB) returns the Euclidean distance between two encoded
// points. kd_axis_dist(p BLOB, axis INTEGER, value REAL) returns the
// distance from an encoded point to the axis-aligned hyperplane at value.
func RegisterDistanceFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("kd_l2", 2, kdL2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("kd_axis_dist", 3, kdAxisDistImpl)
	return nil
}

func asPoint(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodePoint(v)
	default:
		return nil, fmt.Errorf("kd: unsupported argument type %T for point; want BLOB", arg)
	}
}

func kdL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("kd_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asPoint(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asPoint(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	d, err := l2(a, b)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func kdAxisDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("kd_axis_dist: expected 3 arguments, got %d", len(args))
	}
	p, err := asPoint(args[0])
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	axis, ok := args[1].(int64)
	if !ok {
		return nil, fmt.Errorf("kd_axis_dist: axis must be an integer, got %T", args[1])
	}
	var value float64
	switch v := args[2].(type) {
	case float64:
		value = v
	case int64:
		value = float64(v)
	default:
		return nil, fmt.Errorf("kd_axis_dist: value must be numeric, got %T", args[2])
	}
	if axis < 0 || int(axis) >= len(p) {
		return nil, fmt.Errorf("kd_axis_dist: axis %d out of range for %d-dimensional point", axis, len(p))
	}
	return math.Abs(float64(p[axis]) - value), nil
}

// Local minimal helpers to avoid import cycles in tests.
func decodePoint(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("kd: invalid point blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

func l2(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("kd: L2 dim mismatch %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
