package models

import (
	"fmt"
	"strings"
)

// CarryoverKind distinguishes the two kinds of backlink a sutra can
// carry from earlier sutras.
type CarryoverKind int

const (
	// CarryoverAnuvritti marks words from earlier sutras that continue
	// to apply without being restated.
	CarryoverAnuvritti CarryoverKind = iota
	// CarryoverAdhikara marks governing rules whose scope extends over a
	// range of later sutras.
	CarryoverAdhikara
)

func (k CarryoverKind) String() string {
	switch k {
	case CarryoverAnuvritti:
		return "anuvritti"
	case CarryoverAdhikara:
		return "adhikara"
	default:
		return fmt.Sprintf("CarryoverKind(%d)", int(k))
	}
}

// Carryover is the decoded form of one carryover field: the kind it was
// decoded under, the references in source order (duplicates permitted),
// and the raw field text kept verbatim for display.
type Carryover struct {
	Kind       CarryoverKind
	References []Reference
	Raw        string
}

// HasContent reports whether the raw field was non-blank, independent of
// whether any reference survived decoding.
func (c Carryover) HasContent() bool {
	return strings.TrimSpace(c.Raw) != ""
}

// Len returns the number of decoded references.
func (c Carryover) Len() int { return len(c.References) }

func (c Carryover) String() string {
	if len(c.References) == 0 {
		return fmt.Sprintf("%s: %s", c.Kind, c.Raw)
	}
	return fmt.Sprintf("%s: %s (%d references)", c.Kind, c.Raw, len(c.References))
}

// Backlinks bundles the two carryovers of one sutra. The kind of each
// slot is fixed; NewBacklinks rejects a mismatched pair.
type Backlinks struct {
	Anuvritti Carryover
	Adhikara  Carryover
}

// NewBacklinks validates that each carryover sits in the slot matching
// its kind.
func NewBacklinks(anuvritti, adhikara Carryover) (Backlinks, error) {
	if anuvritti.Kind != CarryoverAnuvritti {
		return Backlinks{}, fmt.Errorf("models: anuvritti slot holds %s carryover", anuvritti.Kind)
	}
	if adhikara.Kind != CarryoverAdhikara {
		return Backlinks{}, fmt.Errorf("models: adhikara slot holds %s carryover", adhikara.Kind)
	}
	return Backlinks{Anuvritti: anuvritti, Adhikara: adhikara}, nil
}

// HasAnuvritti reports whether the anuvritti field was non-blank.
func (b Backlinks) HasAnuvritti() bool { return b.Anuvritti.HasContent() }

// HasAdhikara reports whether the adhikara field was non-blank.
func (b Backlinks) HasAdhikara() bool { return b.Adhikara.HasContent() }

// HasAny reports whether either field was non-blank.
func (b Backlinks) HasAny() bool { return b.HasAnuvritti() || b.HasAdhikara() }

// TotalReferences returns the combined reference count of both carryovers.
func (b Backlinks) TotalReferences() int {
	return len(b.Anuvritti.References) + len(b.Adhikara.References)
}
