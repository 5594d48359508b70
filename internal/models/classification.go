package models

import "fmt"

// SutraType classifies the grammatical function of a sutra. Only the
// five codes present in the corpus are recognised.
type SutraType int

const (
	Sanjna     SutraType = iota // S: definition
	Paribhasha                  // P: technical rule
	Vidhi                       // V: injunction
	Atidesha                    // AT: extension
	Adhikara                    // AD: governing rule
)

var sutraTypeCodes = map[string]SutraType{
	"S":  Sanjna,
	"P":  Paribhasha,
	"V":  Vidhi,
	"AT": Atidesha,
	"AD": Adhikara,
}

var sutraTypeNames = map[SutraType]string{
	Sanjna:     "Sanjna",
	Paribhasha: "Paribhasha",
	Vidhi:      "Vidhi",
	Atidesha:   "Atidesha",
	Adhikara:   "Adhikara",
}

// SutraTypeFromCode maps a corpus code (S, P, V, AT, AD) to its type.
func SutraTypeFromCode(code string) (SutraType, bool) {
	t, ok := sutraTypeCodes[code]
	return t, ok
}

// Code returns the one/two-letter corpus code for the type.
func (t SutraType) Code() string {
	for code, typ := range sutraTypeCodes {
		if typ == t {
			return code
		}
	}
	return ""
}

func (t SutraType) String() string {
	if name, ok := sutraTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SutraType(%d)", int(t))
}

// TypeClassification is one classification of a sutra with an optional
// free-text explanation (empty string when none was given). A sutra may
// carry several classifications, including repeats of the same type for
// different reasons.
type TypeClassification struct {
	Type        SutraType
	Explanation string
}

func (c TypeClassification) String() string {
	if c.Explanation != "" {
		return fmt.Sprintf("%s (%s)", c.Type, c.Explanation)
	}
	return c.Type.String()
}
