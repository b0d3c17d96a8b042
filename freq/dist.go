// Package freq implements counting probability distributions: observe
// keyed examples one at a time, then query probabilities, draw random
// samples, or list the most frequent observations.
package freq

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sort"
)

// Entry pairs an observation with its count.
type Entry[K cmp.Ordered] struct {
	Count int
	Obs   K
}

// Dist is a probability distribution formed by observing and counting
// examples. The zero value is an empty, unsmoothed distribution ready
// for use. A Dist must not be copied after its first Add.
//
// A cumulative sampling table is rebuilt lazily: every Add marks it
// stale and the next read that needs it rebuilds it. Access is
// single-writer; concurrent mutation needs external synchronization.
type Dist[K cmp.Ordered] struct {
	counts       map[K]int
	total        int
	defaultCount int
	stale        bool
	cum          []cumEntry[K]
	rng          *rand.Rand
}

type cumEntry[K cmp.Ordered] struct {
	upto int
	obs  K
}

// New creates an unsmoothed distribution, optionally seeded with an
// initial batch of observations.
func New[K cmp.Ordered](observations ...K) Dist[K] {
	return NewSmoothed[K](0, observations...)
}

// NewSmoothed creates a distribution whose unseen observations count as
// defaultCount; defaultCount 1 gives add-one smoothing.
func NewSmoothed[K cmp.Ordered](defaultCount int, observations ...K) Dist[K] {
	d := Dist[K]{defaultCount: defaultCount}
	for _, o := range observations {
		d.Add(o)
	}
	return d
}

// Add records one more occurrence of o.
func (d *Dist[K]) Add(o K) {
	if d.counts == nil {
		d.counts = make(map[K]int)
	}
	d.counts[o]++
	d.total++
	d.stale = true
}

// Count returns the raw observed count of o, without smoothing.
func (d *Dist[K]) Count(o K) int {
	return d.counts[o]
}

// Support returns the number of distinct observations.
func (d *Dist[K]) Support() int {
	return len(d.counts)
}

// Probability estimates the probability of o as
// (count(o)+default) / (total + default*support). An empty unsmoothed
// distribution returns 0 rather than dividing by zero. With no
// smoothing the probabilities over observed keys sum to 1.
func (d *Dist[K]) Probability(o K) float64 {
	d.rebuild()
	denom := d.total + d.defaultCount*len(d.counts)
	if denom == 0 {
		return 0
	}
	return float64(d.counts[o]+d.defaultCount) / float64(denom)
}

// Sample draws a random observation with probability proportional to
// its count (inverse-CDF over the cumulative table). It reports false
// when the distribution is empty. Smoothing does not affect sampling.
func (d *Dist[K]) Sample() (K, bool) {
	d.rebuild()
	var zero K
	if d.total == 0 {
		return zero, false
	}
	r := 1 + d.intN(d.total)
	i := sort.Search(len(d.cum), func(i int) bool { return d.cum[i].upto >= r })
	return d.cum[i].obs, true
}

// Top returns the k most frequent observations. Among equal counts the
// greater observation sorts first.
func (d *Dist[K]) Top(k int) []Entry[K] {
	if k <= 0 {
		return nil
	}
	entries := make([]Entry[K], 0, len(d.counts))
	for o, c := range d.counts {
		entries = append(entries, Entry[K]{Count: c, Obs: o})
	}
	slices.SortFunc(entries, func(a, b Entry[K]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(b.Obs, a.Obs)
	})
	if k > len(entries) {
		k = len(entries)
	}
	return entries[:k]
}

// Size returns the total number of observations added.
func (d *Dist[K]) Size() int {
	d.rebuild()
	return d.total
}

// SetRand injects the random source used by Sample. Tests pass a seeded
// source for determinism; nil restores the process-global source.
func (d *Dist[K]) SetRand(r *rand.Rand) {
	d.rng = r
}

func (d *Dist[K]) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// rebuild refreshes the cumulative table from the current counts. Keys
// are laid out in sorted order so that sampling under a seeded source
// is reproducible.
func (d *Dist[K]) rebuild() {
	if !d.stale {
		return
	}
	keys := make([]K, 0, len(d.counts))
	for o := range d.counts {
		keys = append(keys, o)
	}
	slices.Sort(keys)

	d.cum = make([]cumEntry[K], 0, len(keys))
	upto := 0
	for _, o := range keys {
		upto += d.counts[o]
		d.cum = append(d.cum, cumEntry[K]{upto: upto, obs: o})
	}
	d.stale = false
}
