// Package sqlite implements the repository interface using SQLite as the
// storage backend.
//
// The database is a single local file (or ":memory:" in tests). We use
// modernc.org/sqlite — a pure Go translation of SQLite — so no C compiler is
// needed and the binary stays fully static.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and ensures the
// snippets table exists. Safe to call against an existing file; fails if the
// path is unwritable or the file is corrupt.
//
// Callers own the connection and must Close() it exactly once at shutdown:
//
//	db, err := sqlite.New("data/snippets.db")
//	if err != nil { ... }
//	defer db.Close()
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open only prepares the pool; Ping forces a real connection so a bad
	// path or permissions problem surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the snippets table if it is missing. CREATE TABLE IF NOT
// EXISTS keeps this idempotent — running it against an existing database
// neither errors nor touches existing rows.
//
// title and code carry NOT NULL: the entity performs no validation of its
// own, so the schema is the last line of defence against empty-shell rows.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS snippets (
			id          INTEGER PRIMARY KEY,
			title       TEXT NOT NULL,
			code        TEXT NOT NULL,
			language    TEXT,
			tags        TEXT,
			description TEXT
		);
	`)
	if err != nil {
		return fmt.Errorf("creating snippets table: %w", err)
	}
	return nil
}
