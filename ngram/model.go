// Package ngram provides unigram and n-gram language models over word
// tokens, built on counting distributions. Both support random text
// generation; the n-gram model additionally keeps a family of
// conditional next-token distributions for coherent sequential
// sampling.
package ngram

import (
	"math/rand/v2"
	"strings"

	"github.com/statext/gram/freq"
)

// sentinel pads the start of every sequence so the first real token
// has a full-width context.
const sentinel = ""

// Unigram is a probability distribution over single word tokens.
// Tokens are treated as statistically independent.
type Unigram struct {
	freq.Dist[string]
}

// NewUnigram creates a unigram model, optionally seeded with tokens.
func NewUnigram(words ...string) *Unigram {
	return &Unigram{Dist: freq.New(words...)}
}

// Generate returns n independently sampled words joined by spaces. The
// draws are order-0, so the output has word-level statistics but no
// local coherence.
func (u *Unigram) Generate(n int) string {
	out := make([]string, 0, n)
	for range n {
		w, ok := u.Sample()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// Model is a probability distribution over n-tuples of tokens. The
// joint distribution is paired with a conditional distribution per
// (n-1)-token prefix; every insertion goes through Add, which updates
// both, so the two can never desynchronize.
type Model struct {
	n     int
	joint freq.Dist[string]
	cond  map[string]*freq.Dist[string]
	rng   *rand.Rand
}

// NewModel creates an n-gram model of the given order, optionally
// seeded with a token sequence via AddSequence.
func NewModel(n int, tokens ...string) *Model {
	if n < 1 {
		n = 1
	}
	m := &Model{n: n, cond: make(map[string]*freq.Dist[string])}
	if len(tokens) > 0 {
		m.AddSequence(tokens)
	}
	return m
}

// N returns the model order.
func (m *Model) N() int {
	return m.n
}

// key joins tokens into a distribution key. Word tokens never contain
// spaces, so the joined form round-trips.
func key(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Add counts one occurrence of an n-gram in the joint distribution and
// of its final token in the conditional distribution keyed by its
// prefix. Grams of the wrong width are ignored.
func (m *Model) Add(gram []string) {
	if len(gram) != m.n {
		return
	}
	m.joint.Add(key(gram))

	prefix := key(gram[:m.n-1])
	d := m.cond[prefix]
	if d == nil {
		d = &freq.Dist[string]{}
		d.SetRand(m.rng)
		m.cond[prefix] = d
	}
	d.Add(gram[m.n-1])
}

// AddSequence prepends n-1 sentinel tokens and adds every width-n
// window of the padded sequence. An empty sequence adds nothing.
func (m *Model) AddSequence(tokens []string) {
	padded := make([]string, 0, m.n-1+len(tokens))
	for range m.n - 1 {
		padded = append(padded, sentinel)
	}
	padded = append(padded, tokens...)
	for i := 0; i+m.n <= len(padded); i++ {
		m.Add(padded[i : i+m.n])
	}
}

// Probability returns the joint probability of the n-gram, 0 for grams
// of the wrong width.
func (m *Model) Probability(gram ...string) float64 {
	if len(gram) != m.n {
		return 0
	}
	return m.joint.Probability(key(gram))
}

// Cond returns the conditional next-token distribution for the given
// (n-1)-token prefix, or nil when the prefix was never observed.
func (m *Model) Cond(prefix ...string) *freq.Dist[string] {
	return m.cond[key(prefix)]
}

// Top returns the k most frequent n-grams as space-joined keys.
func (m *Model) Top(k int) []freq.Entry[string] {
	return m.joint.Top(k)
}

// Size returns the total number of n-grams added.
func (m *Model) Size() int {
	return m.joint.Size()
}

// SetRand injects the random source used when generating text.
func (m *Model) SetRand(r *rand.Rand) {
	m.rng = r
	m.joint.SetRand(r)
	for _, d := range m.cond {
		d.SetRand(r)
	}
}

// Generate builds totalWords tokens of random text. It keeps a rolling
// (n-1)-token context, initially all sentinels, and samples each next
// token from the context's conditional distribution. When a context has
// no continuation the context resets to the sentinels and generation
// continues; a model with no continuations at all stops early instead
// of spinning.
func (m *Model) Generate(totalWords int) string {
	context := make([]string, m.n-1)
	start := key(context)
	out := make([]string, 0, totalWords)
	for len(out) < totalWords {
		if d := m.cond[key(context)]; d != nil {
			if w, ok := d.Sample(); ok {
				out = append(out, w)
				if m.n > 1 {
					context = append(context[1:], w)
				}
				continue
			}
		}
		if key(context) == start {
			break
		}
		context = make([]string, m.n-1)
	}
	return strings.Join(out, " ")
}
