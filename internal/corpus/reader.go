// Package corpus loads the Ashtadhyayi sutra corpus from its JSON data
// file into an in-memory collection.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/models"
	"github.com/arindamsaha1507/vyakarana/internal/parser"
)

// requiredFields is the fixed set of keys every corpus record must carry.
var requiredFields = []string{
	"i", "a", "p", "n", "s", "e",
	"skn", "lskn", "mskn", "sskn", "plskn", "lpn",
	"pc", "sk_chapter", "lsk_chapter",
	"type", "an", "ad", "ss",
}

// Read loads and decodes the corpus file at path.
//
// Failures split into two tiers. Structural problems are fatal: a
// missing file, invalid JSON, missing top-level keys, a record missing
// a required field, or a non-numeric identifier component all abort the
// load with an error naming the record index and field. Annotation
// fields (pc, type, an, ad) and the kaumudi cross-reference numbers are
// tolerant: malformed entries are dropped or defaulted without failing
// the record.
func Read(path string) (*models.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode parses corpus JSON already in memory. See Read for the error
// contract.
func Decode(raw []byte) (*models.Collection, error) {
	var doc struct {
		Name *string           `json:"name"`
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("corpus: invalid JSON: %w", err)
	}
	if doc.Name == nil {
		return nil, fmt.Errorf("corpus: %w: name", apperr.ErrMissingField)
	}
	if doc.Data == nil {
		return nil, fmt.Errorf("corpus: %w: data", apperr.ErrMissingField)
	}

	coll := &models.Collection{
		Name:   *doc.Name,
		Sutras: make([]models.Sutra, 0, len(doc.Data)),
	}
	for i, rec := range doc.Data {
		s, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("corpus: record %d: %w", i, err)
		}
		coll.Sutras = append(coll.Sutras, s)
	}
	return coll, nil
}

func decodeRecord(raw json.RawMessage) (models.Sutra, error) {
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Sutra{}, fmt.Errorf("%w: not a flat string record: %v", apperr.ErrInvalidRecord, err)
	}
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return models.Sutra{}, fmt.Errorf("%w: %s", apperr.ErrMissingField, key)
		}
	}

	adhyaya, err := mustInt(fields, "a")
	if err != nil {
		return models.Sutra{}, err
	}
	pada, err := mustInt(fields, "p")
	if err != nil {
		return models.Sutra{}, err
	}
	number, err := mustInt(fields, "n")
	if err != nil {
		return models.Sutra{}, err
	}
	id, err := models.NewIdentifier(adhyaya, pada, number)
	if err != nil {
		return models.Sutra{}, fmt.Errorf("%w: %v", apperr.ErrInvalidRecord, err)
	}

	// The analysis field degrades to absent rather than failing the
	// record. An empty field is absent; a non-empty field that decodes
	// to nothing is present but empty.
	var pv *models.PadaVibhaga
	if fields["pc"] != "" {
		pv = &models.PadaVibhaga{Words: parser.WordAnalyses(fields["pc"])}
	}

	return models.Sutra{
		ID: id,
		Text: models.SutraText{
			Devanagari:      fields["s"],
			Transliteration: fields["e"],
		},
		Refs: models.CrossReferences{
			SKN:        safeInt(fields["skn"]),
			LSKN:       safeInt(fields["lskn"]),
			MSKN:       safeInt(fields["mskn"]),
			SSKN:       safeInt(fields["sskn"]),
			PLSKN:      safeInt(fields["plskn"]),
			LPN:        safeInt(fields["lpn"]),
			SKChapter:  safeInt(fields["sk_chapter"]),
			LSKChapter: safeInt(fields["lsk_chapter"]),
		},
		PadaVibhaga: pv,
		Types:       parser.Classifications(fields["type"]),
		Backlinks:   parser.Backlinks(fields["an"], fields["ad"]),
		SS:          fields["ss"],
	}, nil
}

// mustInt coerces a mandatory identifier field; failure is fatal for
// the whole load.
func mustInt(fields map[string]string, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(fields[key]))
	if err != nil {
		return 0, fmt.Errorf("%w: field %q is not numeric: %q", apperr.ErrInvalidRecord, key, fields[key])
	}
	return n, nil
}

// safeInt coerces an opaque cross-reference field, defaulting to zero
// on blank or unparsable input.
func safeInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
