package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/models"
)

// Meta keys.
const (
	MetaCorpusChecksum = "corpus_checksum"
	MetaCorpusName     = "corpus_name"
)

// SutraRow is the indexed projection of one sutra.
type SutraRow struct {
	Ref             string
	Adhyaya         int
	Pada            int
	Number          int
	Devanagari      string
	Transliteration string
	SS              string
	Types           []string // corpus type codes, e.g. ["P", "AT"]
	AnuvrittiRefs   int
	AdhikaraRefs    int
	SKN             int
	LSKN            int
}

// RowFromSutra projects a domain sutra into its index row.
func RowFromSutra(s *models.Sutra) SutraRow {
	codes := make([]string, len(s.Types))
	for i, c := range s.Types {
		codes[i] = c.Type.Code()
	}
	return SutraRow{
		Ref:             s.Reference(),
		Adhyaya:         s.ID.Adhyaya,
		Pada:            s.ID.Pada,
		Number:          s.ID.Number,
		Devanagari:      s.Text.Devanagari,
		Transliteration: s.Text.Transliteration,
		SS:              s.SS,
		Types:           codes,
		AnuvrittiRefs:   s.Backlinks.Anuvritti.Len(),
		AdhikaraRefs:    s.Backlinks.Adhikara.Len(),
		SKN:             s.Refs.SKN,
		LSKN:            s.Refs.LSKN,
	}
}

// SearchResult represents one search hit.
type SearchResult struct {
	Ref        string
	Devanagari string
	Snippet    string
}

// UpsertSutra inserts or replaces a sutra row and its FTS entry within
// a transaction.
func (db *DB) UpsertSutra(r SutraRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if err := upsertSutraTx(tx, r); err != nil {
		return err
	}
	return tx.Commit()
}

func upsertSutraTx(tx *sql.Tx, r SutraRow) error {
	typesJSON, _ := json.Marshal(r.Types)

	_, err := tx.Exec(`
		INSERT INTO sutras (ref, adhyaya, pada, number, devanagari, transliteration, ss,
		                    types, anuvritti_refs, adhikara_refs, skn, lskn)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ref) DO UPDATE SET
			adhyaya         = excluded.adhyaya,
			pada            = excluded.pada,
			number          = excluded.number,
			devanagari      = excluded.devanagari,
			transliteration = excluded.transliteration,
			ss              = excluded.ss,
			types           = excluded.types,
			anuvritti_refs  = excluded.anuvritti_refs,
			adhikara_refs   = excluded.adhikara_refs,
			skn             = excluded.skn,
			lskn            = excluded.lskn
	`, r.Ref, r.Adhyaya, r.Pada, r.Number, r.Devanagari, r.Transliteration, r.SS,
		string(typesJSON), r.AnuvrittiRefs, r.AdhikaraRefs, r.SKN, r.LSKN)
	if err != nil {
		return fmt.Errorf("index: upsert sutra: %w", err)
	}

	// FTS upsert (no-op when the FTS5 tag is absent).
	if err := ftsUpsert(tx, r.Ref, r.Devanagari, r.Transliteration, r.SS); err != nil {
		return err
	}
	return nil
}

// GetSutra returns the indexed row for a reference.
func (db *DB) GetSutra(ref string) (*SutraRow, error) {
	row := db.conn.QueryRow(`
		SELECT ref, adhyaya, pada, number, devanagari, transliteration, ss,
		       types, anuvritti_refs, adhikara_refs, skn, lskn
		FROM sutras WHERE ref = ?
	`, ref)
	r, err := scanSutraRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("index: get sutra: %w", err)
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSutraRow(sc rowScanner) (*SutraRow, error) {
	var r SutraRow
	var typesJSON string
	err := sc.Scan(&r.Ref, &r.Adhyaya, &r.Pada, &r.Number, &r.Devanagari,
		&r.Transliteration, &r.SS, &typesJSON, &r.AnuvrittiRefs, &r.AdhikaraRefs,
		&r.SKN, &r.LSKN)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(typesJSON), &r.Types); err != nil {
		r.Types = nil
	}
	return &r, nil
}

// ListSutras returns a page of sutras in identifier order, with
// optional adhyaya/pada filters (zero means no filter), plus the total
// count matching the filters.
func (db *DB) ListSutras(limit, offset, adhyaya, pada int) ([]SutraRow, int, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	where := "1=1"
	args := []any{}
	if adhyaya > 0 {
		where += " AND adhyaya = ?"
		args = append(args, adhyaya)
	}
	if pada > 0 {
		where += " AND pada = ?"
		args = append(args, pada)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM sutras WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count sutras: %w", err)
	}

	query := `
		SELECT ref, adhyaya, pada, number, devanagari, transliteration, ss,
		       types, anuvritti_refs, adhikara_refs, skn, lskn
		FROM sutras WHERE ` + where + `
		ORDER BY adhyaya, pada, number
		LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list sutras: %w", err)
	}
	defer rows.Close()

	var out []SutraRow
	for rows.Next() {
		r, scanErr := scanSutraRow(rows)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		out = append(out, *r)
	}
	return out, total, rows.Err()
}

// Count returns the number of indexed sutras.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM sutras`).Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}

// GetMeta returns a meta value, or empty string if unset.
func (db *DB) GetMeta(key string) (string, error) {
	var v string
	err := db.conn.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("index: get meta: %w", err)
	}
	return v, nil
}

func setMetaTx(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("index: set meta: %w", err)
	}
	return nil
}
