// Package testutil provides shared test helpers for building corpus
// fixtures and databases.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arindamsaha1507/vyakarana/internal/index"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "vyakarana-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Record returns a minimal valid corpus record for sutra a.p.n, with
// every required field present. Callers override fields as needed.
func Record(a, p, n string, overrides map[string]string) map[string]string {
	rec := map[string]string{
		"i": a + p + "00" + n, "a": a, "p": p, "n": n,
		"s": "वृद्धिरादैच्", "e": "vRRiddhirAdaich",
		"skn": "", "lskn": "", "mskn": "", "sskn": "", "plskn": "", "lpn": "",
		"pc": "", "sk_chapter": "", "lsk_chapter": "",
		"type": "", "an": "", "ad": "", "ss": "",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

// CorpusJSON marshals a named corpus document from records.
func CorpusJSON(t *testing.T, name string, records ...map[string]string) []byte {
	t.Helper()
	doc := map[string]any{"name": name, "data": records}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

// CorpusFile writes a corpus document to a temp file and returns its path.
func CorpusFile(t *testing.T, name string, records ...map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, CorpusJSON(t, name, records...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
