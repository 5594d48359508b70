package models

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is a named, insertion-ordered set of sutras. Order follows
// the source file, which is not necessarily identifier order; Sorted
// provides an ordered snapshot. Duplicate identifiers are retained and
// lookup returns the first in insertion order. The collection is
// read-only once built.
type Collection struct {
	Name   string
	Sutras []Sutra
}

// Len returns the number of sutras.
func (c *Collection) Len() int { return len(c.Sutras) }

// At returns the sutra at index i. Negative indices count from the end.
// The second return value is false when the index is out of range.
func (c *Collection) At(i int) (*Sutra, bool) {
	if i < 0 {
		i += len(c.Sutras)
	}
	if i < 0 || i >= len(c.Sutras) {
		return nil, false
	}
	return &c.Sutras[i], true
}

// ByReference looks up a sutra by its canonical "a.p.n" reference.
func (c *Collection) ByReference(ref string) (*Sutra, bool) {
	for i := range c.Sutras {
		if c.Sutras[i].Reference() == ref {
			return &c.Sutras[i], true
		}
	}
	return nil, false
}

// ByID looks up a sutra by identifier value.
func (c *Collection) ByID(id Identifier) (*Sutra, bool) {
	for i := range c.Sutras {
		if c.Sutras[i].ID == id {
			return &c.Sutras[i], true
		}
	}
	return nil, false
}

// ByAdhyaya returns all sutras of one adhyaya, in insertion order.
func (c *Collection) ByAdhyaya(adhyaya int) []*Sutra {
	var out []*Sutra
	for i := range c.Sutras {
		if c.Sutras[i].ID.Adhyaya == adhyaya {
			out = append(out, &c.Sutras[i])
		}
	}
	return out
}

// ByPada returns all sutras of one pada within an adhyaya.
func (c *Collection) ByPada(adhyaya, pada int) []*Sutra {
	var out []*Sutra
	for i := range c.Sutras {
		id := c.Sutras[i].ID
		if id.Adhyaya == adhyaya && id.Pada == pada {
			out = append(out, &c.Sutras[i])
		}
	}
	return out
}

// SearchText returns sutras whose devanagari, transliteration, or
// sandhi text contains the given substring.
func (c *Collection) SearchText(text string, caseSensitive bool) []*Sutra {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	var out []*Sutra
	for i := range c.Sutras {
		s := &c.Sutras[i]
		for _, field := range []string{s.Text.Devanagari, s.Text.Transliteration, s.SS} {
			if !caseSensitive {
				field = strings.ToLower(field)
			}
			if strings.Contains(field, text) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Sorted returns a snapshot of the sutras ordered by identifier.
func (c *Collection) Sorted() []*Sutra {
	out := make([]*Sutra, len(c.Sutras))
	for i := range c.Sutras {
		out[i] = &c.Sutras[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (c *Collection) String() string {
	return fmt.Sprintf("Collection(name=%q, count=%d)", c.Name, len(c.Sutras))
}
