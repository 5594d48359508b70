// Package index provides a SQLite-backed search index over the sutra
// collection, with optional FTS5 full-text search.
package index

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const coreSchemaSQL = `
CREATE TABLE IF NOT EXISTS sutras (
	ref             TEXT PRIMARY KEY,
	adhyaya         INTEGER NOT NULL,
	pada            INTEGER NOT NULL,
	number          INTEGER NOT NULL,
	devanagari      TEXT NOT NULL DEFAULT '',
	transliteration TEXT NOT NULL DEFAULT '',
	ss              TEXT NOT NULL DEFAULT '',
	types           TEXT NOT NULL DEFAULT '[]',
	anuvritti_refs  INTEGER NOT NULL DEFAULT 0,
	adhikara_refs   INTEGER NOT NULL DEFAULT 0,
	skn             INTEGER NOT NULL DEFAULT 0,
	lskn            INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_sutras_adhyaya ON sutras(adhyaya);
CREATE INDEX IF NOT EXISTS idx_sutras_pada ON sutras(adhyaya, pada);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);
`

// DB wraps a sql.DB with index-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("index: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: ping: %w", err)
	}
	if _, err := conn.Exec(coreSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply core schema: %w", err)
	}
	if err := initFTS(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply fts schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
