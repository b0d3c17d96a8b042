// Package segment finds the maximum-probability decomposition of an
// unspaced character string into words, scored by a unigram word model.
package segment

import "slices"

// WordScorer supplies the probability of a single word. A trained
// *ngram.Unigram satisfies it.
type WordScorer interface {
	Probability(word string) float64
}

// Viterbi segments text into the best-scoring word sequence and returns
// it with its joint probability (the product of the word probabilities,
// which underflows toward 0 for very long inputs).
//
// Dynamic program over rune positions: best[i] is the probability of
// the best segmentation of text[:i], and the best final word ending at
// each position is recorded for backtracking. Candidates are scanned
// with the start position ascending and compared with >=, so the last
// tying candidate wins; this tie-break is part of the contract and
// keeps output reproducible. Words the model has never seen score 0,
// so only trained spans are ever selected. O(n^2) substring scores.
func Viterbi(text string, model WordScorer) ([]string, float64) {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil, 1.0
	}

	best := make([]float64, n+1)
	best[0] = 1.0
	words := make([]string, n+1)
	lengths := make([]int, n+1)

	for i := 1; i <= n; i++ {
		for j := 0; j < i; j++ {
			w := string(runes[j:i])
			if p := model.Probability(w) * best[j]; p >= best[i] {
				best[i] = p
				words[i] = w
				lengths[i] = i - j
			}
		}
	}

	var seq []string
	for i := n; i > 0; i -= lengths[i] {
		seq = append(seq, words[i])
	}
	slices.Reverse(seq)
	return seq, best[n]
}
