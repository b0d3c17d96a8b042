// Package search provides a generic best-first tree search over
// problem state spaces.
package search

import "container/heap"

// Problem describes a search space: an initial state, a successor
// function, and a goal test.
type Problem[S any] interface {
	Initial() S
	Successors(state S) []S
	GoalTest(state S) bool
}

// BestFirstTreeSearch repeatedly expands the frontier state with the
// highest eval value until one satisfies the goal test, and reports
// false when the frontier empties first. It is a tree search: no
// visited set is kept, so on graph-shaped or unbounded spaces use
// BestFirstTreeSearchLimit.
func BestFirstTreeSearch[S any](p Problem[S], eval func(S) float64) (S, bool) {
	return BestFirstTreeSearchLimit(p, eval, 0)
}

// BestFirstTreeSearchLimit bounds the number of node expansions;
// maxExpansions <= 0 means unbounded.
func BestFirstTreeSearchLimit[S any](p Problem[S], eval func(S) float64, maxExpansions int) (S, bool) {
	initial := p.Initial()
	f := &frontier[S]{items: []scored[S]{{state: initial, value: eval(initial)}}}
	heap.Init(f)

	expanded := 0
	for f.Len() > 0 {
		node := heap.Pop(f).(scored[S])
		if p.GoalTest(node.state) {
			return node.state, true
		}
		if maxExpansions > 0 && expanded >= maxExpansions {
			break
		}
		expanded++
		for _, s := range p.Successors(node.state) {
			heap.Push(f, scored[S]{state: s, value: eval(s)})
		}
	}

	var zero S
	return zero, false
}

type scored[S any] struct {
	state S
	value float64
}

// frontier is a max-heap of scored states.
type frontier[S any] struct {
	items []scored[S]
}

func (f *frontier[S]) Len() int           { return len(f.items) }
func (f *frontier[S]) Less(i, j int) bool { return f.items[i].value > f.items[j].value }
func (f *frontier[S]) Swap(i, j int)      { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier[S]) Push(x any) {
	f.items = append(f.items, x.(scored[S]))
}

func (f *frontier[S]) Pop() any {
	n := len(f.items)
	it := f.items[n-1]
	f.items = f.items[:n-1]
	return it
}
