// Package parser decodes the delimiter-based annotation encodings of
// the sutra corpus: carryover backlinks, type classifications, and
// word-by-word grammatical analysis.
//
// All three grammars share the outer "##" entry separator and the "$"
// field separator. The corpus is hand-authored and its annotation
// fields are known to contain malformed entries, so every parser here
// is fail-open: a malformed entry is dropped (logged at debug level)
// and decoding of its siblings continues. No error is ever returned
// for data-shape problems.
package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/arindamsaha1507/vyakarana/internal/models"
)

const (
	entrySep = "##"
	fieldSep = "$"

	// Minimum length of a fused anuvritti reference: one adhyaya digit,
	// one pada digit, and at least three sutra-number digits.
	minFusedRef = 5
)

// Carryover decodes a raw carryover field under the given kind. The raw
// text is preserved verbatim on the result, even when no reference
// survives. An unknown kind is a programming error and panics.
func Carryover(raw string, kind models.CarryoverKind) models.Carryover {
	out := models.Carryover{Kind: kind, Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return out
	}

	for _, entry := range strings.Split(raw, entrySep) {
		if !strings.Contains(entry, fieldSep) {
			skip(kind.String(), entry, "no field separator")
			continue
		}
		parts := strings.Split(entry, fieldSep)
		if len(parts) < 2 {
			skip(kind.String(), entry, "too few fields")
			continue
		}
		text := strings.TrimSpace(parts[0])

		var (
			id  models.Identifier
			err error
		)
		switch kind {
		case models.CarryoverAnuvritti:
			if len(parts) != 2 {
				skip(kind.String(), entry, "anuvritti entry needs exactly 2 fields")
				continue
			}
			id, err = decodeFusedRef(strings.TrimSpace(parts[1]))
		case models.CarryoverAdhikara:
			if len(parts) != 4 {
				skip(kind.String(), entry, "adhikara entry needs exactly 4 fields")
				continue
			}
			id, err = decodeSplitRef(parts[1], parts[2], parts[3])
		default:
			panic(fmt.Sprintf("parser: unknown carryover kind %d", int(kind)))
		}
		if err != nil {
			skip(kind.String(), entry, err.Error())
			continue
		}
		out.References = append(out.References, models.Reference{ID: id, Text: text})
	}
	return out
}

// Backlinks decodes the anuvritti and adhikara fields of one sutra.
func Backlinks(anuvrittiRaw, adhikaraRaw string) models.Backlinks {
	// Kinds are fixed here, so NewBacklinks cannot fail.
	b, err := models.NewBacklinks(
		Carryover(anuvrittiRaw, models.CarryoverAnuvritti),
		Carryover(adhikaraRaw, models.CarryoverAdhikara),
	)
	if err != nil {
		panic(fmt.Sprintf("parser: %v", err))
	}
	return b
}

// decodeFusedRef decodes the compressed anuvritti reference format:
// adhyaya digit, pada digit, and the remaining digits as the sutra
// number, run together with no separator (e.g. "11001" -> 1.1.1).
func decodeFusedRef(ref string) (models.Identifier, error) {
	if len(ref) < minFusedRef {
		return models.Identifier{}, fmt.Errorf("fused reference %q shorter than %d characters", ref, minFusedRef)
	}
	adhyaya, err := strconv.Atoi(ref[:1])
	if err != nil {
		return models.Identifier{}, fmt.Errorf("fused reference %q: bad adhyaya digit", ref)
	}
	pada, err := strconv.Atoi(ref[1:2])
	if err != nil {
		return models.Identifier{}, fmt.Errorf("fused reference %q: bad pada digit", ref)
	}
	number, err := strconv.Atoi(ref[2:])
	if err != nil {
		return models.Identifier{}, fmt.Errorf("fused reference %q: bad sutra number", ref)
	}
	return models.NewIdentifier(adhyaya, pada, number)
}

// decodeSplitRef decodes the explicit adhikara reference format with
// one field per component.
func decodeSplitRef(adhyayaStr, padaStr, numberStr string) (models.Identifier, error) {
	adhyaya, err := strconv.Atoi(strings.TrimSpace(adhyayaStr))
	if err != nil {
		return models.Identifier{}, fmt.Errorf("bad adhyaya %q", adhyayaStr)
	}
	pada, err := strconv.Atoi(strings.TrimSpace(padaStr))
	if err != nil {
		return models.Identifier{}, fmt.Errorf("bad pada %q", padaStr)
	}
	number, err := strconv.Atoi(strings.TrimSpace(numberStr))
	if err != nil {
		return models.Identifier{}, fmt.Errorf("bad sutra number %q", numberStr)
	}
	return models.NewIdentifier(adhyaya, pada, number)
}

// Classifications decodes a type field into classifications, in source
// order. Unrecognised type codes drop the entry; a missing or blank
// explanation does not.
func Classifications(raw string) []models.TypeClassification {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []models.TypeClassification
	for _, entry := range strings.Split(raw, entrySep) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		parts := strings.Split(entry, fieldSep)
		code := strings.TrimSpace(parts[0])
		typ, ok := models.SutraTypeFromCode(code)
		if !ok {
			skip("type", entry, "unknown type code")
			continue
		}
		c := models.TypeClassification{Type: typ}
		if len(parts) > 1 {
			c.Explanation = strings.TrimSpace(parts[1])
		}
		out = append(out, c)
	}
	return out
}

// WordAnalyses decodes a pada-vibhaga field into per-word analyses, in
// source order. Entries with fewer than four fields, non-numeric
// vibhakti/vachana, or values rejected by the model are dropped.
// Trailing extra fields are ignored.
func WordAnalyses(raw string) []models.WordAnalysis {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []models.WordAnalysis
	for _, entry := range strings.Split(raw, entrySep) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		parts := strings.Split(entry, fieldSep)
		if len(parts) < 4 {
			skip("pada-vibhaga", entry, "needs at least 4 fields")
			continue
		}
		vibhakti, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			skip("pada-vibhaga", entry, "non-numeric vibhakti")
			continue
		}
		vachana, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			skip("pada-vibhaga", entry, "non-numeric vachana")
			continue
		}
		w, err := models.NewWordAnalysis(parts[0], parts[1], vibhakti, vachana)
		if err != nil {
			skip("pada-vibhaga", entry, err.Error())
			continue
		}
		out = append(out, w)
	}
	return out
}

func skip(grammar, entry, reason string) {
	slog.Debug("parser: skipped entry",
		slog.String("grammar", grammar),
		slog.String("entry", entry),
		slog.String("reason", reason))
}
