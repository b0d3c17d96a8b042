package cipher

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/statext/gram/internal/textutil"
	"github.com/statext/gram/ngram"
	"github.com/statext/gram/search"
)

// PermutationDecoder breaks arbitrary substitution ciphers. With 26!
// permutations the space cannot be enumerated, so decoding is a search
// over partial letter-to-letter assignments, scored by how much the
// candidate decoding looks like the training language: word, letter,
// and letter-pair probabilities combined.
type PermutationDecoder struct {
	words   *ngram.Unigram // by word
	letters *ngram.Unigram // by letter
	pairs   *ngram.Model   // by letter pair
}

// NewPermutationDecoder trains the three scoring models on
// natural-language text.
func NewPermutationDecoder(training string) *PermutationDecoder {
	canonical := textutil.Canonicalize(training)
	return &PermutationDecoder{
		words:   ngram.NewUnigram(textutil.Words(training)...),
		letters: ngram.NewUnigram(textutil.Letters(canonical)...),
		pairs:   ngram.NewModel(2, textutil.Letters(canonical)...),
	}
}

// Assignment maps cipher letters to the plaintext letters they decode
// to. It is partial during search and total at the goal.
type Assignment map[byte]byte

// Apply translates the assigned cipher letters case-preservingly and
// leaves everything else, unassigned letters included, in place.
func (a Assignment) Apply(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			if p, ok := a[byte(r)]; ok {
				return rune(p)
			}
		case r >= 'A' && r <= 'Z':
			if p, ok := a[byte(r-'A'+'a')]; ok {
				return rune(p - 'a' + 'A')
			}
		}
		return r
	}, text)
}

// Score decodes the ciphertext under the assignment and combines the
// word, letter, and letter-pair log-likelihoods of the result. The logs
// can underflow a plain product, so the sum is exponentiated at the
// end; any zero-probability term contributes -Inf and the score is then
// exactly 0, never a fault. The score is never negative.
func (d *PermutationDecoder) Score(ciphertext string, a Assignment) float64 {
	text := a.Apply(ciphertext)

	logP := 0.0
	for _, w := range textutil.Words(text) {
		logP += math.Log(d.words.Probability(w))
	}
	letters := textutil.Letters(textutil.Canonicalize(text))
	for _, c := range letters {
		logP += math.Log(d.letters.Probability(c))
	}
	for _, b := range textutil.TokenBigrams(letters) {
		logP += math.Log(d.pairs.Probability(b[0], b[1]))
	}
	return math.Exp(logP)
}

// Decode searches for a complete assignment and returns the ciphertext
// decoded under it. The search is delegated to the best-first tree
// search utility; an exhausted search is reported as an error rather
// than looping.
func (d *PermutationDecoder) Decode(ciphertext string) (string, error) {
	p := &permutationProblem{
		decoder: d,
		order:   cipherOrder(textutil.Canonicalize(ciphertext)),
	}
	code, ok := search.BestFirstTreeSearch[Assignment](p, func(a Assignment) float64 {
		return d.Score(ciphertext, a)
	})
	if !ok {
		return "", fmt.Errorf("cipher: search exhausted without a complete assignment")
	}
	return code.Apply(ciphertext), nil
}

// nextPlain picks the plaintext letter to assign next: the one with the
// highest letter-unigram probability among letters no assignment uses
// yet, preferring the greater letter on ties.
func (d *PermutationDecoder) nextPlain(a Assignment) (byte, bool) {
	var used [26]bool
	for _, plain := range a {
		used[plain-'a'] = true
	}
	var best byte
	bestP := -1.0
	found := false
	for i := range 26 {
		c := byte('a' + i)
		if used[i] {
			continue
		}
		if p := d.letters.Probability(string(c)); p > bestP || (p == bestP && c > best) {
			best, bestP, found = c, p, true
		}
	}
	return best, found
}

// permutationProblem is the search-space view of a decoding: states are
// partial assignments, and each state has exactly one successor pairing
// the next unassigned ciphertext letter (most frequent first) with the
// most probable unused plaintext letter. The single successor makes the
// search a greedy 26-step walk; a branching successor function could be
// substituted without changing the decoder.
type permutationProblem struct {
	decoder *PermutationDecoder
	order   []byte // ciphertext letters, most frequent first
}

func (p *permutationProblem) Initial() Assignment {
	return Assignment{}
}

// GoalTest reports whether all 26 letters are assigned.
func (p *permutationProblem) GoalTest(a Assignment) bool {
	return len(a) >= len(Alphabet)
}

func (p *permutationProblem) Successors(a Assignment) []Assignment {
	var cipherChar byte
	found := false
	for _, c := range p.order {
		if _, ok := a[c]; !ok {
			cipherChar, found = c, true
			break
		}
	}
	if !found {
		return nil
	}
	plainChar, ok := p.decoder.nextPlain(a)
	if !ok {
		return nil
	}

	next := make(Assignment, len(a)+1)
	for k, v := range a {
		next[k] = v
	}
	next[cipherChar] = plainChar
	return []Assignment{next}
}

// cipherOrder returns the 26 letters ordered by descending frequency in
// the canonicalized ciphertext, ties alphabetical, so the best-attested
// cipher letters are assigned first.
func cipherOrder(canonical string) []byte {
	var counts [26]int
	for _, r := range canonical {
		if r >= 'a' && r <= 'z' {
			counts[r-'a']++
		}
	}
	order := make([]byte, 26)
	for i := range order {
		order[i] = byte('a' + i)
	}
	slices.SortStableFunc(order, func(x, y byte) int {
		if c := counts[y-'a'] - counts[x-'a']; c != 0 {
			return c
		}
		return int(x) - int(y)
	})
	return order
}
