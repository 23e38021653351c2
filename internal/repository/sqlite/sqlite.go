// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a
// single file. No separate database server to install, configure, or
// manage. The service stores two small collections (queries and
// recommendations) and only ever touches one record per operation, which
// is squarely inside SQLite's comfort zone.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which means you need a C compiler installed
// and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// The sqlite package's init() registers itself with database/sql as a
	// driver named "sqlite". After this import, sql.Open("sqlite", ...)
	// knows how to talk to SQLite.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements both repository
// interfaces. The server constructs it once at startup, injects it into
// the services, and closes it during graceful shutdown — there is no
// package-level connection state.
type DB struct {
	conn *sql.DB
}

// New creates a new SQLite database connection and runs migrations.
//
// dbPath examples:
//   - "data/electroevo.db" → file-based database (persistent)
//   - ":memory:"           → in-memory database (great for tests)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows one writer at a time, PRAGMAs apply per connection,
	// and an in-memory database is private to the connection that opened
	// it. A single pooled connection sidesteps all three.
	conn.SetMaxOpenConns(1)

	// Ping verifies the connection actually works. Without this, a bad
	// path or permissions issue would only surface on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL (Write-Ahead Logging) mode:
	// Default SQLite locks the entire database during writes. WAL allows
	// concurrent reads while a write is happening — important for a web
	// server where counter updates and listings interleave.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. The server defers this in its
// shutdown path so pending WAL writes are flushed.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the two collections' tables.
//
// recommendations.queries_id deliberately has no foreign key to
// queries(id): the source system allows recommendations to outlive their
// parent query (no cascade on delete), and we preserve that.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS queries (
			id                   TEXT PRIMARY KEY,
			product_name         TEXT NOT NULL DEFAULT '',
			product_brand        TEXT NOT NULL DEFAULT '',
			query_title          TEXT NOT NULL DEFAULT '',
			boycotting_details   TEXT NOT NULL DEFAULT '',
			image_url            TEXT NOT NULL DEFAULT '',
			email                TEXT NOT NULL DEFAULT '',
			recommendation_count INTEGER NOT NULL DEFAULT 0,
			created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_queries_email ON queries(email);
	`)
	if err != nil {
		return fmt.Errorf("creating queries table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS recommendations (
			id                       TEXT PRIMARY KEY,
			queries_id               TEXT NOT NULL DEFAULT '',
			query_title              TEXT NOT NULL DEFAULT '',
			product_name             TEXT NOT NULL DEFAULT '',
			product_image            TEXT NOT NULL DEFAULT '',
			recommendation_title     TEXT NOT NULL DEFAULT '',
			recommended_product_name TEXT NOT NULL DEFAULT '',
			recommended_image        TEXT NOT NULL DEFAULT '',
			recommendation_reason    TEXT NOT NULL DEFAULT '',
			recommendation_email     TEXT NOT NULL DEFAULT '',
			email                    TEXT NOT NULL DEFAULT '',
			created_at               DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recommendations_queries_id ON recommendations(queries_id);
		CREATE INDEX IF NOT EXISTS idx_recommendations_email ON recommendations(email);
		CREATE INDEX IF NOT EXISTS idx_recommendations_rec_email ON recommendations(recommendation_email);
	`)
	if err != nil {
		return fmt.Errorf("creating recommendations table: %w", err)
	}

	return nil
}
