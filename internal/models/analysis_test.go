package models

import "testing"

func TestNewWordAnalysis_SentinelCoupling(t *testing.T) {
	for vibhakti := 0; vibhakti <= MaxVibhakti; vibhakti++ {
		for vachana := 0; vachana <= MaxVachana; vachana++ {
			_, err := NewWordAnalysis("पदम्", "N", vibhakti, vachana)
			wantErr := (vibhakti == 0) != (vachana == 0)
			if wantErr && err == nil {
				t.Errorf("vibhakti=%d vachana=%d: decoupled sentinel should fail", vibhakti, vachana)
			}
			if !wantErr && err != nil {
				t.Errorf("vibhakti=%d vachana=%d: unexpected error: %v", vibhakti, vachana, err)
			}
		}
	}
}

func TestNewWordAnalysis_Bounds(t *testing.T) {
	cases := []struct {
		vibhakti, vachana int
	}{
		{-1, 1}, {9, 1}, {1, -1}, {1, 4},
	}
	for _, c := range cases {
		if _, err := NewWordAnalysis("w", "S", c.vibhakti, c.vachana); err == nil {
			t.Errorf("vibhakti=%d vachana=%d should fail", c.vibhakti, c.vachana)
		}
	}
}

func TestWordAnalysis_Avyaya(t *testing.T) {
	w, err := NewWordAnalysis("च", "", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !w.IsAvyaya() {
		t.Error("0/0 word should be avyaya")
	}
	if w.VibhaktiName() != "Avyaya" || w.VachanaName() != "Avyaya" {
		t.Errorf("names = %q, %q", w.VibhaktiName(), w.VachanaName())
	}

	decl, err := NewWordAnalysis("वृद्धिः", "F", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if decl.IsAvyaya() {
		t.Error("1/1 word should not be avyaya")
	}
	if decl.VibhaktiName() != "Prathama" || decl.VachanaName() != "Ekavachana" {
		t.Errorf("names = %q, %q", decl.VibhaktiName(), decl.VachanaName())
	}
}

func TestPadaVibhaga_Len(t *testing.T) {
	var absent *PadaVibhaga
	if absent.Len() != 0 {
		t.Error("nil pada-vibhaga should have length 0")
	}
	w, _ := NewWordAnalysis("w", "N", 7, 1)
	pv := &PadaVibhaga{Words: []WordAnalysis{w}}
	if pv.Len() != 1 {
		t.Errorf("Len = %d, want 1", pv.Len())
	}
}
