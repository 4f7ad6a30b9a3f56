package rpn

import "numex-core/arith"

// Eval runs the stack machine over expr. ok=false marks an inapplicable
// candidate: insufficient operands, a rule violation on any operator, or
// a final stack that does not hold exactly one value. Every intermediate
// result is a non-negative integer by construction.
func Eval(expr Expr) (int, bool) {
	var stack []int
	for _, t := range expr {
		if t.IsNum() {
			stack = append(stack, t.N)
			continue
		}
		if t.Op.Unary() {
			if len(stack) < 1 {
				return 0, false
			}
			a := stack[len(stack)-1]
			v, ok := applyUnary(t.Op, a)
			if !ok {
				return 0, false
			}
			stack[len(stack)-1] = v
			continue
		}
		if len(stack) < 2 {
			return 0, false
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		v, ok := applyBinary(t.Op, a, b)
		if !ok {
			return 0, false
		}
		stack[len(stack)-1] = v
	}
	if len(stack) != 1 {
		return 0, false
	}
	return stack[0], true
}

func applyUnary(op Op, a int) (int, bool) {
	switch op {
	case OpFact:
		if a < 0 {
			return 0, false
		}
		return arith.Factorial(a)
	case OpSqrt:
		return arith.ExactSqrt(a)
	}
	return 0, false
}

// applyBinary applies op to a (pushed first) and b (pushed second).
func applyBinary(op Op, a, b int) (int, bool) {
	switch op {
	case OpAdd:
		return a + b, true
	case OpMul:
		return a * b, true
	case OpSub:
		// no negative intermediate results anywhere
		if a < b {
			return 0, false
		}
		return a - b, true
	case OpDiv:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	case OpPow:
		return arith.Pow(a, b)
	case OpRoot:
		// b-th root of a
		return arith.Root(a, b)
	}
	return 0, false
}
