package pointset

import (
	"database/sql"
)

const pointSetsSchema = `
CREATE TABLE IF NOT EXISTS point_sets (
    set_name TEXT NOT NULL,
    idx      INTEGER NOT NULL,
    coords   BLOB NOT NULL,
    PRIMARY KEY(set_name, idx)
);
`

// EnsureSchema creates the point_sets table in the provided database if it
// does not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(pointSetsSchema)
	return err
}
