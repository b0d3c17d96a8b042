package cipher

import (
	"github.com/statext/gram/freq"
	"github.com/statext/gram/internal/textutil"
)

// ShiftDecoder breaks shift ciphers. There are only 26 possible
// encodings, so every one is scored against a letter-pair distribution
// and the most probable candidate wins.
type ShiftDecoder struct {
	pairs freq.Dist[string]
}

// NewShiftDecoder trains a decoder on natural-language text. The text
// is canonicalized to lowercase letters and spaces, and the bigram
// distribution uses add-one smoothing so every candidate pair keeps a
// nonzero probability.
func NewShiftDecoder(training string) *ShiftDecoder {
	d := &ShiftDecoder{pairs: freq.NewSmoothed[string](1)}
	for _, b := range Bigrams(textutil.Canonicalize(training)) {
		d.pairs.Add(b)
	}
	return d
}

// Score rates text by how common its letter pairs are: the product of
// the smoothed bigram probabilities of the canonicalized text.
func (d *ShiftDecoder) Score(text string) float64 {
	s := 1.0
	for _, b := range Bigrams(textutil.Canonicalize(text)) {
		s *= d.pairs.Probability(b)
	}
	return s
}

// Decode tries all 26 shift decodings of ciphertext and returns the one
// with the best score. The lowest shift wins ties. Empty ciphertext
// decodes to the empty string.
func (d *ShiftDecoder) Decode(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}
	best := ""
	bestScore := -1.0
	for n := range 26 {
		candidate := Encode(ciphertext, Shift(n))
		if score := d.Score(candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best
}
