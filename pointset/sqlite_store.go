package pointset

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store on top of a SQLite database. Each point of a
// set is stored as one row keyed by (set_name, idx) with BLOB-encoded
// coordinates.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed Store and ensures the point_sets
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("pointset: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save persists the set in a single transaction, replacing any stored set
// with the same name. All points must share the set's dimensionality.
func (s *SQLiteStore) Save(ctx context.Context, set Set) error {
	if set.Name == "" {
		return fmt.Errorf("pointset: Set.Name must be set in Save")
	}
	for i, p := range set.Points {
		if len(p) != set.Dims {
			return fmt.Errorf("pointset: point %d has %d dimensions, set declares %d", i, len(p), set.Dims)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM point_sets WHERE set_name = ?`, set.Name); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO point_sets(set_name, idx, coords) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range set.Points {
		blob, err := EncodePoint(p)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, set.Name, i, blob); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the stored set with the given name. Points come back in
// index order; a name with no rows yields an error.
func (s *SQLiteStore) Load(ctx context.Context, name string) (*Set, error) {
	if name == "" {
		return nil, fmt.Errorf("pointset: Load called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT coords FROM point_sets WHERE set_name = ? ORDER BY idx`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &Set{Name: name}
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		coords, err := DecodePoint(blob)
		if err != nil {
			return nil, err
		}
		if len(set.Points) == 0 {
			set.Dims = len(coords)
		} else if len(coords) != set.Dims {
			return nil, fmt.Errorf("pointset: stored point %d has %d dimensions, want %d", len(set.Points), len(coords), set.Dims)
		}
		set.Points = append(set.Points, coords)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(set.Points) == 0 {
		return nil, fmt.Errorf("pointset: no stored set named %q", name)
	}
	return set, nil
}

// Remove deletes the stored set with the given name.
func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("pointset: Remove called with empty name")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM point_sets WHERE set_name = ?`, name)
	return err
}

// Names lists the names of all stored sets in lexical order.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT set_name FROM point_sets ORDER BY set_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
