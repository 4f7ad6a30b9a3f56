package rpn

// Complexity weights. Lower total score means a simpler expression:
// every operand costs 1, the elementary operators are free, and the
// exotic operators are priced steeply so that plain arithmetic wins
// ties.
const (
	weightNum  = 1
	weightPow  = 5
	weightSqrt = 6
	weightRoot = 7
	weightFact = 8
)

// SigmaScore is the fixed score of a pure summation solution.
const SigmaScore = 10

// Score sums the complexity weights over expr.
func Score(expr Expr) int {
	s := 0
	for _, t := range expr {
		if t.IsNum() {
			s += weightNum
			continue
		}
		switch t.Op {
		case OpPow:
			s += weightPow
		case OpSqrt:
			s += weightSqrt
		case OpRoot:
			s += weightRoot
		case OpFact:
			s += weightFact
		}
	}
	return s
}
