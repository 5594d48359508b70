//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS sutras_fts USING fts5(
			ref UNINDEXED,
			devanagari,
			transliteration,
			ss,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, ref, devanagari, transliteration, ss string) error {
	_, _ = tx.Exec(`DELETE FROM sutras_fts WHERE ref = ?`, ref)
	_, err := tx.Exec(`INSERT INTO sutras_fts (ref, devanagari, transliteration, ss) VALUES (?, ?, ?, ?)`,
		ref, devanagari, transliteration, ss)
	if err != nil {
		return fmt.Errorf("index: upsert fts: %w", err)
	}
	return nil
}

func ftsClear(tx *sql.Tx) error {
	if _, err := tx.Exec(`DELETE FROM sutras_fts`); err != nil {
		return fmt.Errorf("index: clear fts: %w", err)
	}
	return nil
}

// Search performs an FTS5 full-text search over the three text columns
// and returns matching sutras with snippets.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT ref,
		       devanagari,
		       snippet(sutras_fts, 2, '<b>', '</b>', '...', 32)
		FROM sutras_fts
		WHERE sutras_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Ref, &r.Devanagari, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
