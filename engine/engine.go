package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database with the modernc.org/sqlite driver. The
// pointset store and the kdfind CLI both go through this helper so every
// caller shares the same driver registration (and any distance functions
// registered via RegisterDistanceFunctions).
//
// Pass a file path like "./kdfind.db" for durable storage, or ":memory:"
// for throwaway databases in tests.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
