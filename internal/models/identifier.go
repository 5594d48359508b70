// Package models defines the domain types for the Ashtadhyayi sutra corpus.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier bounds. An adhyaya (chapter) is 1-8, a pada (quarter) 1-4;
// the sutra number within a pada has no upper bound.
const (
	MaxAdhyaya = 8
	MaxPada    = 4
)

// Identifier addresses a single sutra by (adhyaya, pada, number).
// It is an immutable value type, comparable and usable as a map key.
type Identifier struct {
	Adhyaya int
	Pada    int
	Number  int
}

// NewIdentifier validates the triple and returns an Identifier.
func NewIdentifier(adhyaya, pada, number int) (Identifier, error) {
	if adhyaya < 1 || adhyaya > MaxAdhyaya {
		return Identifier{}, fmt.Errorf("models: adhyaya must be between 1 and %d, got %d", MaxAdhyaya, adhyaya)
	}
	if pada < 1 || pada > MaxPada {
		return Identifier{}, fmt.Errorf("models: pada must be between 1 and %d, got %d", MaxPada, pada)
	}
	if number < 1 {
		return Identifier{}, fmt.Errorf("models: sutra number must be positive, got %d", number)
	}
	return Identifier{Adhyaya: adhyaya, Pada: pada, Number: number}, nil
}

// ParseReference parses a canonical "a.p.n" reference string.
func ParseReference(ref string) (Identifier, error) {
	parts := strings.Split(ref, ".")
	if len(parts) != 3 {
		return Identifier{}, fmt.Errorf("models: reference %q is not of the form a.p.n", ref)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Identifier{}, fmt.Errorf("models: reference %q has non-numeric component %q", ref, p)
		}
		nums[i] = n
	}
	return NewIdentifier(nums[0], nums[1], nums[2])
}

// Reference returns the canonical "a.p.n" form.
func (id Identifier) Reference() string {
	return fmt.Sprintf("%d.%d.%d", id.Adhyaya, id.Pada, id.Number)
}

func (id Identifier) String() string { return id.Reference() }

// Compare orders identifiers lexicographically by (adhyaya, pada, number).
// It returns -1, 0, or 1.
func (id Identifier) Compare(other Identifier) int {
	switch {
	case id.Adhyaya != other.Adhyaya:
		return cmpInt(id.Adhyaya, other.Adhyaya)
	case id.Pada != other.Pada:
		return cmpInt(id.Pada, other.Pada)
	default:
		return cmpInt(id.Number, other.Number)
	}
}

// Less reports whether id sorts before other.
func (id Identifier) Less(other Identifier) bool {
	return id.Compare(other) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reference pairs an Identifier with the portion of text borrowed from
// the referenced sutra. The text may be empty.
type Reference struct {
	ID   Identifier
	Text string
}

func (r Reference) String() string {
	return fmt.Sprintf("%s: %q", r.ID.Reference(), r.Text)
}
