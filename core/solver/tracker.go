package solver

import (
	"fmt"
	"sort"

	"numex-core/rpn"
)

// tracker accumulates candidates for one search invocation. It is local
// to that invocation: recursive sub-searches build their own tracker and
// only their exact solutions are merged back. Exact matches are
// monotonic — added or left unchanged, never removed — except for the
// summation override in setSigma.
type tracker struct {
	target    int
	exact     map[string]Solution
	order     map[string]int // insertion sequence, for deterministic ties
	seq       int
	closest   *Closest
	evaluated bool
}

func newTracker(target int) *tracker {
	return &tracker{
		target: target,
		exact:  make(map[string]Solution),
		order:  make(map[string]int),
	}
}

func solutionKey(s Solution) string {
	if s.Type == TypeSigma && s.Sigma != nil {
		return fmt.Sprintf("sigma:%d-%d:%s", s.Sigma.Start, s.Sigma.End, s.Expr)
	}
	return s.Expr
}

// update records an evaluated (value, expression) candidate.
func (t *tracker) update(value int, e rpn.Expr) {
	t.consider(Solution{
		Value: value,
		Expr:  rpn.Infix(e),
		RPN:   e.Clone(),
		Type:  TypeNormal,
		Score: rpn.Score(e),
	})
}

// consider feeds one candidate through the closest and exact paths.
// Exact inserts are first-found-wins per expression; the closest record
// improves only on strictly smaller distance, so ties keep the earlier
// candidate.
func (t *tracker) consider(s Solution) {
	t.evaluated = true
	d := abs(s.Value - t.target)
	if t.closest == nil || d < t.closest.Distance {
		t.closest = &Closest{Solution: s, Distance: d}
	}
	if s.Value != t.target {
		return
	}
	k := solutionKey(s)
	if _, dup := t.exact[k]; dup {
		return
	}
	t.exact[k] = s
	t.order[k] = t.seq
	t.seq++
}

// setSigma records a direct summation hit. Unlike consider, it removes
// every existing exact entry for the same value before inserting — the
// summation path overrides first-found-wins.
func (t *tracker) setSigma(s Solution) {
	t.evaluated = true
	for k, old := range t.exact {
		if old.Value == s.Value {
			delete(t.exact, k)
			delete(t.order, k)
		}
	}
	k := solutionKey(s)
	t.exact[k] = s
	t.order[k] = t.seq
	t.seq++
	if d := abs(s.Value - t.target); t.closest == nil || d < t.closest.Distance {
		t.closest = &Closest{Solution: s, Distance: d}
	}
}

// merge folds exact solutions from a sub-search into this tracker.
func (t *tracker) merge(subs []Solution) {
	for _, s := range subs {
		t.consider(s)
	}
}

// exactAll returns every accumulated exact solution in insertion order.
func (t *tracker) exactAll() []Solution {
	out := make([]Solution, 0, len(t.exact))
	keys := make([]string, 0, len(t.exact))
	for k := range t.exact {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return t.order[keys[i]] < t.order[keys[j]] })
	for _, k := range keys {
		out = append(out, t.exact[k])
	}
	return out
}

// distill snapshots the tracker into a Result: exact matches sorted
// ascending by score (earlier-found first on equal score), capped at
// MaxExact; the closest record only if anything was evaluated.
func (t *tracker) distill() Result {
	sols := t.exactAll()
	sort.SliceStable(sols, func(i, j int) bool { return sols[i].Score < sols[j].Score })
	if len(sols) > MaxExact {
		sols = sols[:MaxExact]
	}
	var r Result
	if len(sols) > 0 {
		r.Exact = sols
	}
	if t.evaluated {
		r.Closest = t.closest
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
