// Package sutraservice coordinates the in-memory sutra collection and
// the SQLite search index behind one query surface.
package sutraservice

import (
	"context"
	"sync"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/index"
	"github.com/arindamsaha1507/vyakarana/internal/models"
)

// SutraDetail is the full representation of a sutra.
type SutraDetail struct {
	Ref             string         `json:"ref"`
	Adhyaya         int            `json:"adhyaya"`
	Pada            int            `json:"pada"`
	Number          int            `json:"number"`
	Devanagari      string         `json:"devanagari"`
	Transliteration string         `json:"transliteration"`
	SS              string         `json:"ss"`
	Types           []TypeItem     `json:"types"`
	Anuvritti       CarryoverItem  `json:"anuvritti"`
	Adhikara        CarryoverItem  `json:"adhikara"`
	PadaVibhaga     []WordItem     `json:"pada_vibhaga,omitempty"`
	Kaumudi         KaumudiNumbers `json:"kaumudi"`
}

// SutraListItem is a lightweight item in a list response.
type SutraListItem struct {
	Ref             string   `json:"ref"`
	Devanagari      string   `json:"devanagari"`
	Transliteration string   `json:"transliteration"`
	Types           []string `json:"types"`
	AnuvrittiRefs   int      `json:"anuvritti_refs"`
	AdhikaraRefs    int      `json:"adhikara_refs"`
}

// TypeItem is one classification with its optional explanation.
type TypeItem struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Explanation string `json:"explanation,omitempty"`
}

// ReferenceItem is one decoded carryover reference.
type ReferenceItem struct {
	Ref  string `json:"ref"`
	Text string `json:"text"`
}

// CarryoverItem is one decoded carryover field.
type CarryoverItem struct {
	Raw        string          `json:"raw"`
	References []ReferenceItem `json:"references"`
}

// WordItem is the analysis of one word.
type WordItem struct {
	Word     string `json:"word"`
	Gender   string `json:"gender"`
	Vibhakti int    `json:"vibhakti"`
	Vachana  int    `json:"vachana"`
	Avyaya   bool   `json:"avyaya"`
}

// KaumudiNumbers carries the external cross-reference numbers.
type KaumudiNumbers struct {
	SKN        int `json:"skn"`
	LSKN       int `json:"lskn"`
	MSKN       int `json:"mskn"`
	SSKN       int `json:"sskn"`
	PLSKN      int `json:"plskn"`
	LPN        int `json:"lpn"`
	SKChapter  int `json:"sk_chapter"`
	LSKChapter int `json:"lsk_chapter"`
}

// Stats summarises the loaded corpus.
type Stats struct {
	Name          string `json:"name"`
	Sutras        int    `json:"sutras"`
	WithAnuvritti int    `json:"with_anuvritti"`
	WithAdhikara  int    `json:"with_adhikara"`
	Indexed       int    `json:"indexed"`
}

// Service exposes queries over the collection and the index. The
// collection pointer is swapped wholesale on corpus reload; individual
// collections are never mutated.
type Service struct {
	mu   sync.RWMutex
	coll *models.Collection
	db   *index.DB
}

// New creates a service over an already-loaded collection.
func New(coll *models.Collection, db *index.DB) *Service {
	return &Service{coll: coll, db: db}
}

// Replace swaps in a freshly loaded collection.
func (s *Service) Replace(coll *models.Collection) {
	s.mu.Lock()
	s.coll = coll
	s.mu.Unlock()
}

// Collection returns the current collection.
func (s *Service) Collection() *models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll
}

// GetSutra returns the full detail for a canonical "a.p.n" reference.
func (s *Service) GetSutra(_ context.Context, ref string) (*SutraDetail, error) {
	su, ok := s.Collection().ByReference(ref)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return buildDetail(su), nil
}

// ListSutras returns a page of sutras in identifier order with optional
// adhyaya/pada filters (zero means no filter).
func (s *Service) ListSutras(_ context.Context, limit, offset, adhyaya, pada int) ([]SutraListItem, int, error) {
	rows, total, err := s.db.ListSutras(limit, offset, adhyaya, pada)
	if err != nil {
		return nil, 0, err
	}
	items := make([]SutraListItem, len(rows))
	for i, r := range rows {
		items[i] = SutraListItem{
			Ref:             r.Ref,
			Devanagari:      r.Devanagari,
			Transliteration: r.Transliteration,
			Types:           nonNilSlice(r.Types),
			AnuvrittiRefs:   r.AnuvrittiRefs,
			AdhikaraRefs:    r.AdhikaraRefs,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// SearchText performs an in-memory substring search over the
// devanagari, transliteration, and sandhi text fields.
func (s *Service) SearchText(_ context.Context, text string, caseSensitive bool) []SutraListItem {
	hits := s.Collection().SearchText(text, caseSensitive)
	items := make([]SutraListItem, len(hits))
	for i, su := range hits {
		codes := make([]string, len(su.Types))
		for j, c := range su.Types {
			codes[j] = c.Type.Code()
		}
		items[i] = SutraListItem{
			Ref:             su.Reference(),
			Devanagari:      su.Text.Devanagari,
			Transliteration: su.Text.Transliteration,
			Types:           codes,
			AnuvrittiRefs:   su.Backlinks.Anuvritti.Len(),
			AdhikaraRefs:    su.Backlinks.Adhikara.Len(),
		}
	}
	return items
}

// Stats returns summary counts for the loaded corpus.
func (s *Service) Stats(_ context.Context) (*Stats, error) {
	coll := s.Collection()
	st := &Stats{Name: coll.Name, Sutras: coll.Len()}
	for i := range coll.Sutras {
		if coll.Sutras[i].HasAnuvritti() {
			st.WithAnuvritti++
		}
		if coll.Sutras[i].HasAdhikara() {
			st.WithAdhikara++
		}
	}
	indexed, err := s.db.Count()
	if err != nil {
		return nil, err
	}
	st.Indexed = indexed
	return st, nil
}

func buildDetail(su *models.Sutra) *SutraDetail {
	d := &SutraDetail{
		Ref:             su.Reference(),
		Adhyaya:         su.ID.Adhyaya,
		Pada:            su.ID.Pada,
		Number:          su.ID.Number,
		Devanagari:      su.Text.Devanagari,
		Transliteration: su.Text.Transliteration,
		SS:              su.SS,
		Types:           []TypeItem{},
		Anuvritti:       buildCarryover(su.Backlinks.Anuvritti),
		Adhikara:        buildCarryover(su.Backlinks.Adhikara),
		Kaumudi: KaumudiNumbers{
			SKN:        su.Refs.SKN,
			LSKN:       su.Refs.LSKN,
			MSKN:       su.Refs.MSKN,
			SSKN:       su.Refs.SSKN,
			PLSKN:      su.Refs.PLSKN,
			LPN:        su.Refs.LPN,
			SKChapter:  su.Refs.SKChapter,
			LSKChapter: su.Refs.LSKChapter,
		},
	}
	for _, c := range su.Types {
		d.Types = append(d.Types, TypeItem{
			Code:        c.Type.Code(),
			Name:        c.Type.String(),
			Explanation: c.Explanation,
		})
	}
	if su.PadaVibhaga != nil {
		d.PadaVibhaga = make([]WordItem, 0, len(su.PadaVibhaga.Words))
		for _, w := range su.PadaVibhaga.Words {
			d.PadaVibhaga = append(d.PadaVibhaga, WordItem{
				Word:     w.Word,
				Gender:   w.Gender,
				Vibhakti: w.Vibhakti,
				Vachana:  w.Vachana,
				Avyaya:   w.IsAvyaya(),
			})
		}
	}
	return d
}

func buildCarryover(c models.Carryover) CarryoverItem {
	item := CarryoverItem{Raw: c.Raw, References: []ReferenceItem{}}
	for _, r := range c.References {
		item.References = append(item.References, ReferenceItem{
			Ref:  r.ID.Reference(),
			Text: r.Text,
		})
	}
	return item
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
