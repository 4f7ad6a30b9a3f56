package solver

import (
	"strconv"
	"strings"

	"numex-core/arith"
	"numex-core/permute"
	"numex-core/rpn"
)

// MaxSigmaSpan bounds the length of a summation range: the extension
// only considers pairs whose difference is at most this.
const MaxSigmaSpan = 20

// Solve searches for expressions over numbers that reach target with
// the operator set gated by level. It is pure and synchronous; all
// state lives in a per-invocation tracker and sub-search memo.
func Solve(numbers []int, target int, level rpn.Level) Result {
	s := &search{target: target, memo: make(map[string][]Solution)}
	t := newTracker(target)
	s.into(t, numbers, level)
	return t.distill()
}

// search owns the per-Solve memo of sub-search results. The unary and
// summation passes reach the same (numbers, level) state through many
// rewrite interleavings; the enumeration for a state is deterministic,
// so its exact list is computed once and reused.
type search struct {
	target int
	memo   map[string][]Solution
}

func stateKey(nums []int, level rpn.Level) string {
	var b strings.Builder
	for i, n := range nums {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte('|')
	b.WriteString(string(level))
	return b.String()
}

// into runs the whole pipeline — shape enumeration, the unary
// decoration pass, and the summation extension — feeding every valid
// candidate into t.
func (s *search) into(t *tracker, numbers []int, level rpn.Level) {
	perms := permute.Distinct(numbers)
	ops := level.BinaryOps()
	for _, perm := range perms {
		for _, combo := range opCombos(ops, len(perm)-1) {
			for _, e := range candidateShapes(perm, combo) {
				if v, ok := rpn.Eval(e); ok {
					t.update(v, e)
				}
			}
		}
	}
	if level.AllowsUnary() {
		s.unaryPass(t, numbers, level)
	}
	if level.AllowsSigma() {
		s.sigmaPass(t, numbers, level)
	}
}

// exactFor returns the exact solutions of a full nested search on nums,
// memoized per (number sequence, level). The sub-tracker's closest
// record stays internal to the sub-call.
func (s *search) exactFor(nums []int, level rpn.Level) []Solution {
	k := stateKey(nums, level)
	if sols, hit := s.memo[k]; hit {
		return sols
	}
	sub := newTracker(s.target)
	s.into(sub, nums, level)
	sols := sub.exactAll()
	s.memo[k] = sols
	return sols
}

// unaryPass tries replacing one number with its exact square root or
// its bounded factorial, then re-runs the whole search on the modified
// set and merges the exact sub-results. The substitution only happens
// when it changes the value, which both prunes no-ops (sqrt(1), 2!) and
// bounds the recursion.
//
// The substituted value is carried into the sub-search as an ordinary
// number, so merged expressions show the reduced constant rather than
// sqrt(original) or original!. Inherited behavior; see DESIGN.md.
func (s *search) unaryPass(t *tracker, numbers []int, level rpn.Level) {
	for i, n := range numbers {
		if r, ok := arith.ExactSqrt(n); ok && r != n {
			t.merge(s.exactFor(replaced(numbers, i, r), level))
		}
		if f, ok := arith.Factorial(n); ok && f != n {
			t.merge(s.exactFor(replaced(numbers, i, f), level))
		}
	}
}

// sigmaPass tries closed-form sums Σ k for k in [lo, hi] over every
// value pair with lo < hi and hi-lo <= MaxSigmaSpan. The remaining
// numbers plus the sum are searched one level down (the extension never
// re-enters itself). A sum that alone equals the target is recorded
// directly, overriding any existing exact entry for that value.
func (s *search) sigmaPass(t *tracker, numbers []int, level rpn.Level) {
	for i, lo := range numbers {
		for j, hi := range numbers {
			if i == j || lo >= hi || hi-lo > MaxSigmaSpan {
				continue
			}
			sum := (lo + hi) * (hi - lo + 1) / 2
			sig := &Sigma{Start: lo, End: hi, Body: "i"}
			if sum == s.target {
				t.setSigma(Solution{
					Value: s.target,
					Type:  TypeSigma,
					Sigma: sig,
					Score: rpn.SigmaScore,
				})
			}
			rest := removedPair(numbers, i, j)
			rest = append(rest, sum)
			for _, sol := range s.exactFor(rest, level.Below()) {
				t.consider(Solution{
					Value: sol.Value,
					Expr:  sol.Expr,
					RPN:   sol.RPN,
					Type:  TypeSigma,
					Sigma: sig,
					Score: sol.Score + rpn.SigmaScore,
				})
			}
		}
	}
}

func replaced(nums []int, i, v int) []int {
	out := append([]int(nil), nums...)
	out[i] = v
	return out
}

func removedPair(nums []int, i, j int) []int {
	out := make([]int, 0, len(nums)-2)
	for k, n := range nums {
		if k == i || k == j {
			continue
		}
		out = append(out, n)
	}
	return out
}
