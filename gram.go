// Package gram builds statistical models of text.
//
// It provides word frequency and n-gram models trained from raw text,
// plus operations built on top of them: segmenting unspaced text into
// words, generating random text, and scoring the similarity of two
// word sequences.
//
//	m := gram.Train(corpus)
//	words, _ := m.Segment("itiseasytoreadwords")
//	fmt.Println(words) // ["it" "is" "easy" "to" "read" "words"]
package gram

import (
	"math/rand/v2"

	"github.com/statext/gram/internal/textutil"
	"github.com/statext/gram/ngram"
	"github.com/statext/gram/segment"
)

// Model bundles the word models trained from a single corpus.
type Model struct {
	Words   *ngram.Unigram
	Pairs   *ngram.Model
	Triples *ngram.Model
}

// Train tokenizes text and builds unigram, bigram and trigram models
// over its words.
func Train(text string) *Model {
	words := textutil.Words(text)
	m := &Model{
		Words:   ngram.NewUnigram(words...),
		Pairs:   ngram.NewModel(2),
		Triples: ngram.NewModel(3),
	}
	m.Pairs.AddSequence(words)
	m.Triples.AddSequence(words)
	return m
}

// Segment splits text with no spaces into the most probable word
// sequence under the unigram model, returning the words and the
// probability of the whole sequence.
func (m *Model) Segment(text string) ([]string, float64) {
	return segment.Viterbi(text, m.Words)
}

// Generate produces n words of random text joined by spaces. With
// order 1 words are drawn independently from the unigram model; higher
// orders condition each word on the preceding order-1 words.
func (m *Model) Generate(order, n int) string {
	switch order {
	case 2:
		return m.Pairs.Generate(n)
	case 3:
		return m.Triples.Generate(n)
	default:
		return m.Words.Generate(n)
	}
}

// SetRand makes text generation deterministic under the given source.
func (m *Model) SetRand(rng *rand.Rand) {
	m.Words.SetRand(rng)
	m.Pairs.SetRand(rng)
	m.Triples.SetRand(rng)
}

// Sim reports how closely one word sequence matches another.
type Sim struct {
	Score        float64
	Matches      int
	Displacement int
}

// Similarity compares two word sequences, typically top-k word lists
// of two corpora. Shared words raise the score and positional drift
// between their first occurrences lowers it. The score is in [0, 1]
// with 1 meaning b repeats a exactly.
func Similarity(a, b []string) Sim {
	pos := make(map[string]int, len(a))
	for i, w := range a {
		if _, seen := pos[w]; !seen {
			pos[w] = i
		}
	}

	var s Sim
	for j, w := range b {
		i, ok := pos[w]
		if !ok {
			continue
		}
		s.Matches++
		if d := i - j; d < 0 {
			s.Displacement -= d
		} else {
			s.Displacement += d
		}
	}
	if len(a) > 0 {
		s.Score = (1 / (1 + 0.1*float64(s.Displacement))) * float64(s.Matches) / float64(len(a))
	}
	return s
}
