package index_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/corpus"
	"github.com/arindamsaha1507/vyakarana/internal/index"
	"github.com/arindamsaha1507/vyakarana/internal/models"
	"github.com/arindamsaha1507/vyakarana/internal/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCollection(t *testing.T) *models.Collection {
	t.Helper()
	coll, err := corpus.Decode(testutil.CorpusJSON(t, "ashtadhyayi",
		testutil.Record("1", "1", "1", map[string]string{
			"s": "वृद्धिरादैच्", "e": "vRRiddhirAdaich",
			"type": "S$x$",
		}),
		testutil.Record("1", "1", "2", map[string]string{
			"s": "अदेङ् गुणः", "e": "adeN guNaH",
			"an": "वृद्धिः$11001",
		}),
		testutil.Record("2", "1", "1", map[string]string{
			"s": "समर्थः पदविधिः", "e": "samarthaH padavidhiH",
		}),
	))
	if err != nil {
		t.Fatal(err)
	}
	return coll
}

func TestUpsertAndGetSutra(t *testing.T) {
	db := testutil.TestDB(t)
	coll := testCollection(t)

	s, _ := coll.ByReference("1.1.2")
	if err := db.UpsertSutra(index.RowFromSutra(s)); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetSutra("1.1.2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Devanagari != "अदेङ् गुणः" || got.Adhyaya != 1 || got.Pada != 1 || got.Number != 2 {
		t.Errorf("row = %+v", got)
	}
	if got.AnuvrittiRefs != 1 {
		t.Errorf("anuvritti refs = %d, want 1", got.AnuvrittiRefs)
	}

	// Upsert is idempotent on the reference key.
	if err := db.UpsertSutra(index.RowFromSutra(s)); err != nil {
		t.Fatal(err)
	}
	if n, _ := db.Count(); n != 1 {
		t.Errorf("count after re-upsert = %d, want 1", n)
	}
}

func TestGetSutra_NotFound(t *testing.T) {
	db := testutil.TestDB(t)
	_, err := db.GetSutra("8.4.68")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetSutra_TypesRoundTrip(t *testing.T) {
	db := testutil.TestDB(t)
	coll := testCollection(t)
	s, _ := coll.ByReference("1.1.1")
	if err := db.UpsertSutra(index.RowFromSutra(s)); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetSutra("1.1.1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Types) != 1 || got.Types[0] != "S" {
		t.Errorf("types = %v", got.Types)
	}
}

func TestSync_BuildsAndSkips(t *testing.T) {
	db := testutil.TestDB(t)
	coll := testCollection(t)

	if err := index.Sync(db, coll, "sum-1", discard()); err != nil {
		t.Fatal(err)
	}
	if n, _ := db.Count(); n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
	if sum, _ := db.GetMeta(index.MetaCorpusChecksum); sum != "sum-1" {
		t.Errorf("checksum = %q", sum)
	}
	if name, _ := db.GetMeta(index.MetaCorpusName); name != "ashtadhyayi" {
		t.Errorf("name = %q", name)
	}

	// Same checksum: no rebuild, rows untouched.
	smaller := &models.Collection{Name: "ashtadhyayi", Sutras: coll.Sutras[:1]}
	if err := index.Sync(db, smaller, "sum-1", discard()); err != nil {
		t.Fatal(err)
	}
	if n, _ := db.Count(); n != 3 {
		t.Errorf("count after skipped sync = %d, want 3", n)
	}

	// New checksum: full rebuild from the new collection.
	if err := index.Sync(db, smaller, "sum-2", discard()); err != nil {
		t.Fatal(err)
	}
	if n, _ := db.Count(); n != 1 {
		t.Errorf("count after rebuild = %d, want 1", n)
	}
	if _, err := db.GetSutra("2.1.1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Error("stale row should be gone after rebuild")
	}
}

func TestListSutras(t *testing.T) {
	db := testutil.TestDB(t)
	if err := index.Sync(db, testCollection(t), "sum", discard()); err != nil {
		t.Fatal(err)
	}

	rows, total, err := db.ListSutras(0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("total = %d, rows = %d", total, len(rows))
	}
	// Identifier order regardless of insertion order.
	if rows[0].Ref != "1.1.1" || rows[2].Ref != "2.1.1" {
		t.Errorf("order = %s .. %s", rows[0].Ref, rows[len(rows)-1].Ref)
	}

	rows, total, err = db.ListSutras(1, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(rows) != 1 || rows[0].Ref != "1.1.2" {
		t.Errorf("paged rows = %v, total = %d", rows, total)
	}

	rows, total, err = db.ListSutras(0, 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(rows) != 2 {
		t.Errorf("adhyaya filter: total = %d, rows = %d", total, len(rows))
	}

	rows, total, err = db.ListSutras(0, 0, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || rows[0].Ref != "2.1.1" {
		t.Errorf("pada filter: total = %d, rows = %v", total, rows)
	}
}

func TestSearch(t *testing.T) {
	db := testutil.TestDB(t)
	if err := index.Sync(db, testCollection(t), "sum", discard()); err != nil {
		t.Fatal(err)
	}

	hits, err := db.Search("guNaH", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Ref != "1.1.2" {
		t.Errorf("hits = %v", hits)
	}

	hits, err = db.Search("no such word", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v", hits)
	}
}
