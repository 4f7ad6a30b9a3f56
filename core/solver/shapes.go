package solver

import "numex-core/rpn"

// opCombos enumerates every ordered operator assignment of length k
// drawn with repetition from ops. k == 0 yields the single empty
// assignment, which makes a one-number permutation evaluate as a bare
// literal.
func opCombos(ops []rpn.Op, k int) [][]rpn.Op {
	if k <= 0 {
		return [][]rpn.Op{nil}
	}
	total := 1
	for i := 0; i < k; i++ {
		total *= len(ops)
	}
	out := make([][]rpn.Op, 0, total)
	idx := make([]int, k)
	for {
		combo := make([]rpn.Op, k)
		for i, j := range idx {
			combo[i] = ops[j]
		}
		out = append(out, combo)
		p := k - 1
		for p >= 0 {
			idx[p]++
			if idx[p] < len(ops) {
				break
			}
			idx[p] = 0
			p--
		}
		if p < 0 {
			return out
		}
	}
}

// candidateShapes builds the fixed expression shapes for one
// permutation and operator assignment. This is an intentionally
// incomplete subset of the binary trees over the operands:
//
//	left fold   (any n):  (((a op b) op c) ...)
//	balanced    (n == 4): (a op0 b) op2 (c op1 d)
//	grouped     (n == 5): ((a op0 b) op2 (c op1 d)) op3 e
func candidateShapes(perm []int, ops []rpn.Op) []rpn.Expr {
	n := len(perm)
	shapes := []rpn.Expr{leftFold(perm, ops)}
	if n == 4 && len(ops) >= 3 {
		shapes = append(shapes, rpn.Expr{
			rpn.Num(perm[0]), rpn.Num(perm[1]), rpn.Operator(ops[0]),
			rpn.Num(perm[2]), rpn.Num(perm[3]), rpn.Operator(ops[1]),
			rpn.Operator(ops[2]),
		})
	}
	if n == 5 && len(ops) >= 4 {
		shapes = append(shapes, rpn.Expr{
			rpn.Num(perm[0]), rpn.Num(perm[1]), rpn.Operator(ops[0]),
			rpn.Num(perm[2]), rpn.Num(perm[3]), rpn.Operator(ops[1]),
			rpn.Operator(ops[2]),
			rpn.Num(perm[4]), rpn.Operator(ops[3]),
		})
	}
	return shapes
}

func leftFold(perm []int, ops []rpn.Op) rpn.Expr {
	e := make(rpn.Expr, 0, 2*len(perm)-1)
	e = append(e, rpn.Num(perm[0]))
	for i := 1; i < len(perm); i++ {
		e = append(e, rpn.Num(perm[i]), rpn.Operator(ops[i-1]))
	}
	return e
}
