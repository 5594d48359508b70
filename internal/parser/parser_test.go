package parser

import (
	"testing"

	"github.com/arindamsaha1507/vyakarana/internal/models"
)

func TestCarryover_AnuvrittiFusedRoundTrip(t *testing.T) {
	c := Carryover("fragment$11001", models.CarryoverAnuvritti)
	if c.Kind != models.CarryoverAnuvritti {
		t.Errorf("kind = %v", c.Kind)
	}
	if len(c.References) != 1 {
		t.Fatalf("references = %d, want 1", len(c.References))
	}
	r := c.References[0]
	if r.Text != "fragment" {
		t.Errorf("text = %q", r.Text)
	}
	if r.ID.Reference() != "1.1.1" {
		t.Errorf("id = %s, want 1.1.1", r.ID)
	}
	if c.Raw != "fragment$11001" {
		t.Errorf("raw = %q", c.Raw)
	}
}

func TestCarryover_FusedDigitSplit(t *testing.T) {
	// The fused form is adhyaya digit + pada digit + remaining digits.
	cases := []struct {
		ref  string
		want string
	}{
		{"11001", "1.1.1"},
		{"34120", "3.4.120"},
		{"84068", "8.4.68"},
		{"12345", "1.2.345"},
	}
	for _, c := range cases {
		co := Carryover("w$"+c.ref, models.CarryoverAnuvritti)
		if len(co.References) != 1 {
			t.Errorf("ref %q: got %d references", c.ref, len(co.References))
			continue
		}
		if got := co.References[0].ID.Reference(); got != c.want {
			t.Errorf("ref %q decoded to %s, want %s", c.ref, got, c.want)
		}
	}
}

func TestCarryover_AdhikaraExplicit(t *testing.T) {
	c := Carryover("fragment$1$4$23", models.CarryoverAdhikara)
	if len(c.References) != 1 {
		t.Fatalf("references = %d, want 1", len(c.References))
	}
	r := c.References[0]
	if r.Text != "fragment" || r.ID.Reference() != "1.4.23" {
		t.Errorf("got %s", r)
	}
}

func TestCarryover_EmptyAndWhitespacePreserved(t *testing.T) {
	for _, kind := range []models.CarryoverKind{models.CarryoverAnuvritti, models.CarryoverAdhikara} {
		for _, raw := range []string{"", "   ", "\t"} {
			c := Carryover(raw, kind)
			if len(c.References) != 0 {
				t.Errorf("kind %v raw %q: got %d references", kind, raw, len(c.References))
			}
			if c.Raw != raw {
				t.Errorf("kind %v: raw %q not preserved verbatim, got %q", kind, raw, c.Raw)
			}
		}
	}
}

func TestCarryover_MalformedEntriesDropped(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind models.CarryoverKind
	}{
		{"no field separator", "text111", models.CarryoverAnuvritti},
		{"empty reference part", "text$", models.CarryoverAnuvritti},
		{"fused too short", "text$11", models.CarryoverAnuvritti},
		{"fused four chars", "text$1100", models.CarryoverAnuvritti},
		{"fused non-numeric", "text$1a001", models.CarryoverAnuvritti},
		{"anuvritti with extra fields", "text$11001$extra", models.CarryoverAnuvritti},
		{"adhyaya out of range", "text$91001", models.CarryoverAnuvritti},
		{"adhikara too few fields", "text$1$1", models.CarryoverAdhikara},
		{"adhikara too many fields", "text$1$1$1$1", models.CarryoverAdhikara},
		{"adhikara non-numeric", "text$x$1$1", models.CarryoverAdhikara},
		{"adhikara pada out of range", "text$1$5$1", models.CarryoverAdhikara},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			co := Carryover(c.raw, c.kind)
			if len(co.References) != 0 {
				t.Errorf("got %d references, want 0", len(co.References))
			}
			if co.Raw != c.raw {
				t.Errorf("raw not preserved: %q", co.Raw)
			}
		})
	}
}

func TestCarryover_MixedValidityKeepsSurvivors(t *testing.T) {
	raw := "valid$11001##invalid##another$22002"
	c := Carryover(raw, models.CarryoverAnuvritti)
	if len(c.References) != 2 {
		t.Fatalf("references = %d, want 2", len(c.References))
	}
	if c.References[0].Text != "valid" || c.References[0].ID.Reference() != "1.1.1" {
		t.Errorf("first = %s", c.References[0])
	}
	if c.References[1].Text != "another" || c.References[1].ID.Reference() != "2.2.2" {
		t.Errorf("second = %s", c.References[1])
	}
	if c.Raw != raw {
		t.Errorf("raw = %q", c.Raw)
	}
}

func TestCarryover_EntryOrderAndDuplicates(t *testing.T) {
	c := Carryover("a$11001##b$11001##c$84068", models.CarryoverAnuvritti)
	if len(c.References) != 3 {
		t.Fatalf("references = %d, want 3", len(c.References))
	}
	got := []string{c.References[0].Text, c.References[1].Text, c.References[2].Text}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("order = %v", got)
	}
	if c.References[0].ID != c.References[1].ID {
		t.Error("duplicate references must both be retained")
	}
}

func TestCarryover_SeparatorEdgeCases(t *testing.T) {
	// Leading, trailing, and doubled entry separators produce empty
	// entries that are skipped without affecting their siblings.
	c := Carryover("##a$11001####b$21002##", models.CarryoverAnuvritti)
	if len(c.References) != 2 {
		t.Fatalf("references = %d, want 2", len(c.References))
	}
	if c.References[1].ID.Reference() != "2.1.2" {
		t.Errorf("second id = %s", c.References[1].ID)
	}
}

func TestCarryover_FragmentTrimmed(t *testing.T) {
	c := Carryover("  spaced fragment  $11001", models.CarryoverAnuvritti)
	if len(c.References) != 1 {
		t.Fatal("expected one reference")
	}
	if c.References[0].Text != "spaced fragment" {
		t.Errorf("text = %q", c.References[0].Text)
	}
}

func TestCarryover_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown kind should panic")
		}
	}()
	Carryover("a$11001", models.CarryoverKind(42))
}

func TestBacklinks_DecodesBothFields(t *testing.T) {
	b := Backlinks("word$11001", "scope$1$1$5##more$2$3$4")
	if b.Anuvritti.Kind != models.CarryoverAnuvritti || b.Adhikara.Kind != models.CarryoverAdhikara {
		t.Fatal("kinds mixed up")
	}
	if len(b.Anuvritti.References) != 1 || len(b.Adhikara.References) != 2 {
		t.Errorf("references = %d/%d", len(b.Anuvritti.References), len(b.Adhikara.References))
	}
	if b.TotalReferences() != 3 {
		t.Errorf("TotalReferences = %d", b.TotalReferences())
	}
}

func TestClassifications_Basic(t *testing.T) {
	out := Classifications("P$explanation$##AT$text$")
	if len(out) != 2 {
		t.Fatalf("classifications = %d, want 2", len(out))
	}
	if out[0].Type != models.Paribhasha || out[0].Explanation != "explanation" {
		t.Errorf("first = %+v", out[0])
	}
	if out[1].Type != models.Atidesha || out[1].Explanation != "text" {
		t.Errorf("second = %+v", out[1])
	}
}

func TestClassifications_UnknownCodeDropped(t *testing.T) {
	out := Classifications("S$a$##ZZ$x$##V$b$")
	if len(out) != 2 {
		t.Fatalf("classifications = %d, want 2", len(out))
	}
	if out[0].Type != models.Sanjna || out[1].Type != models.Vidhi {
		t.Errorf("types = %v, %v", out[0].Type, out[1].Type)
	}
}

func TestClassifications_MissingExplanationKept(t *testing.T) {
	// "code$$" keeps the classification, with no explanation.
	out := Classifications("AD$$")
	if len(out) != 1 {
		t.Fatalf("classifications = %d, want 1", len(out))
	}
	if out[0].Type != models.Adhikara || out[0].Explanation != "" {
		t.Errorf("got %+v", out[0])
	}

	// A bare code with no separator at all is also kept.
	out = Classifications("S")
	if len(out) != 1 || out[0].Explanation != "" {
		t.Errorf("bare code: %+v", out)
	}
}

func TestClassifications_DuplicateTypesRetained(t *testing.T) {
	out := Classifications("P$first reason$##P$second reason$")
	if len(out) != 2 {
		t.Fatalf("classifications = %d, want 2", len(out))
	}
	if out[0].Explanation != "first reason" || out[1].Explanation != "second reason" {
		t.Errorf("explanations = %q, %q", out[0].Explanation, out[1].Explanation)
	}
}

func TestClassifications_Blank(t *testing.T) {
	if out := Classifications(""); len(out) != 0 {
		t.Errorf("empty input: %v", out)
	}
	if out := Classifications("  "); len(out) != 0 {
		t.Errorf("blank input: %v", out)
	}
}

func TestWordAnalyses_Basic(t *testing.T) {
	out := WordAnalyses("वृद्धिः$F$1$1$##आदैच्$N$1$1$")
	if len(out) != 2 {
		t.Fatalf("analyses = %d, want 2", len(out))
	}
	if out[0].Word != "वृद्धिः" || out[0].Gender != "F" || out[0].Vibhakti != 1 || out[0].Vachana != 1 {
		t.Errorf("first = %+v", out[0])
	}
}

func TestWordAnalyses_Avyaya(t *testing.T) {
	out := WordAnalyses("च$$0$0$")
	if len(out) != 1 {
		t.Fatalf("analyses = %d, want 1", len(out))
	}
	if !out[0].IsAvyaya() {
		t.Error("0/0 entry should be avyaya")
	}
}

func TestWordAnalyses_MalformedDropped(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"too few fields", "word$N$1", 0},
		{"non-numeric vibhakti", "word$N$x$1", 0},
		{"non-numeric vachana", "word$N$1$x", 0},
		{"vibhakti out of range", "word$N$9$1", 0},
		{"decoupled sentinel", "word$N$0$1", 0},
		{"valid among invalid", "bad$N$0$2##good$F$2$1$", 1},
		{"extra trailing fields ignored", "word$N$1$1$junk$more", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := WordAnalyses(c.raw)
			if len(out) != c.want {
				t.Errorf("analyses = %d, want %d", len(out), c.want)
			}
		})
	}
}
