package models

import "fmt"

// SutraText holds the text of a sutra in its two encodings.
type SutraText struct {
	Devanagari      string
	Transliteration string
}

// CrossReferences carries the sutra's positions in external numbering
// schemes (Siddhanta Kaumudi and related digests). The values are
// opaque; zero means the sutra does not appear in that scheme, or the
// source field was blank.
type CrossReferences struct {
	SKN        int // Siddhanta Kaumudi number
	LSKN       int // Laghu Siddhanta Kaumudi number
	MSKN       int // Madhya Siddhanta Kaumudi number
	SSKN       int // Sara Siddhanta Kaumudi number
	PLSKN      int // Paribhasha Laghu Siddhanta Kaumudi number
	LPN        int // Laghu Prakriya number
	SKChapter  int
	LSKChapter int
}

// Sutra is one aphorism of the corpus with all its decoded metadata.
// It is assembled once by the corpus reader and never mutated.
// Identity, ordering, and hashing follow the Identifier alone.
type Sutra struct {
	ID          Identifier
	Text        SutraText
	Refs        CrossReferences
	PadaVibhaga *PadaVibhaga // nil when the source field was absent
	Types       []TypeClassification
	Backlinks   Backlinks
	SS          string // sutra text with sandhi applied
}

// Reference returns the canonical "a.p.n" reference of the sutra.
func (s *Sutra) Reference() string { return s.ID.Reference() }

// HasType reports whether the sutra carries the given classification.
func (s *Sutra) HasType(t SutraType) bool {
	for _, c := range s.Types {
		if c.Type == t {
			return true
		}
	}
	return false
}

// HasAnuvritti reports whether the sutra has anuvritti content.
func (s *Sutra) HasAnuvritti() bool { return s.Backlinks.HasAnuvritti() }

// HasAdhikara reports whether the sutra has adhikara content.
func (s *Sutra) HasAdhikara() bool { return s.Backlinks.HasAdhikara() }

// Less orders sutras by their identifiers.
func (s *Sutra) Less(other *Sutra) bool { return s.ID.Less(other.ID) }

func (s *Sutra) String() string {
	return fmt.Sprintf("Sutra %s: %s", s.Reference(), s.Text.Devanagari)
}
