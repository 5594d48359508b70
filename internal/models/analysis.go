package models

import "fmt"

// WordAnalysis bounds. Vibhakti (case) runs 1-8 and vachana (number)
// 1-3; zero in both marks an avyaya (indeclinable) word.
const (
	MaxVibhakti = 8
	MaxVachana  = 3
)

var vibhaktiNames = [MaxVibhakti + 1]string{
	"Avyaya", "Prathama", "Dvitiya", "Tritiya", "Chaturthi",
	"Panchami", "Shashthi", "Saptami", "Sambodhana",
}

var vachanaNames = [MaxVachana + 1]string{
	"Avyaya", "Ekavachana", "Dvivachana", "Bahuvachana",
}

// WordAnalysis is the grammatical analysis of a single word of a sutra.
// Gender is a free-form short code and is not validated.
type WordAnalysis struct {
	Word     string
	Gender   string
	Vibhakti int
	Vachana  int
}

// NewWordAnalysis validates the vibhakti/vachana bounds and the coupled
// avyaya sentinel: both must be zero together or non-zero together.
func NewWordAnalysis(word, gender string, vibhakti, vachana int) (WordAnalysis, error) {
	if vibhakti < 0 || vibhakti > MaxVibhakti {
		return WordAnalysis{}, fmt.Errorf("models: vibhakti must be between 0 and %d, got %d", MaxVibhakti, vibhakti)
	}
	if vachana < 0 || vachana > MaxVachana {
		return WordAnalysis{}, fmt.Errorf("models: vachana must be between 0 and %d, got %d", MaxVachana, vachana)
	}
	if (vibhakti == 0) != (vachana == 0) {
		return WordAnalysis{}, fmt.Errorf("models: avyaya words need both vibhakti and vachana zero, got %d and %d", vibhakti, vachana)
	}
	return WordAnalysis{Word: word, Gender: gender, Vibhakti: vibhakti, Vachana: vachana}, nil
}

// IsAvyaya reports whether the word is indeclinable.
func (w WordAnalysis) IsAvyaya() bool { return w.Vibhakti == 0 && w.Vachana == 0 }

// VibhaktiName returns the Sanskrit name of the case ending.
func (w WordAnalysis) VibhaktiName() string { return vibhaktiNames[w.Vibhakti] }

// VachanaName returns the Sanskrit name of the number.
func (w WordAnalysis) VachanaName() string { return vachanaNames[w.Vachana] }

func (w WordAnalysis) String() string {
	if w.IsAvyaya() {
		return fmt.Sprintf("%s (Avyaya)", w.Word)
	}
	return fmt.Sprintf("%s (%s, %s)", w.Word, w.VibhaktiName(), w.VachanaName())
}

// PadaVibhaga is the word-by-word analysis of one sutra, in source
// order. A sutra whose analysis field was absent carries a nil
// *PadaVibhaga; a present field that decoded to nothing carries an
// empty one.
type PadaVibhaga struct {
	Words []WordAnalysis
}

// Len returns the number of analysed words.
func (p *PadaVibhaga) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Words)
}
