package rpn

import "fmt"

// Display precedence used only for parenthesization. Numbers and unary
// results never need parentheses.
const (
	precAddSub = 1
	precMulDiv = 2
	precPow    = 3
	precAtom   = 4
)

func opPrec(op Op) int {
	switch op {
	case OpAdd, OpSub:
		return precAddSub
	case OpMul, OpDiv:
		return precMulDiv
	case OpPow, OpRoot:
		return precPow
	}
	return precAtom
}

type frag struct {
	text string
	prec int
}

// Infix renders a valid expression as a minimally-parenthesized string.
// It assumes expr evaluates successfully and does not re-validate; on a
// malformed sequence it returns the best-effort partial text. The left
// operand of a binary operator is parenthesized when its precedence is
// strictly lower than the operator's, the right operand when lower or
// equal — that asymmetry keeps "-" and "/" left-associative in print.
func Infix(expr Expr) string {
	var stack []frag
	for _, t := range expr {
		if t.IsNum() {
			stack = append(stack, frag{t.String(), precAtom})
			continue
		}
		if t.Op.Unary() {
			if len(stack) < 1 {
				continue
			}
			a := stack[len(stack)-1]
			stack[len(stack)-1] = renderUnary(t.Op, a)
			continue
		}
		if len(stack) < 2 {
			continue
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		stack[len(stack)-1] = renderBinary(t.Op, a, b)
	}
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].text
}

func renderUnary(op Op, a frag) frag {
	switch op {
	case OpSqrt:
		return frag{fmt.Sprintf("sqrt(%s)", a.text), precAtom}
	case OpFact:
		t := a.text
		if a.prec < precAtom {
			t = "(" + t + ")"
		}
		return frag{t + "!", precAtom}
	}
	return a
}

func renderBinary(op Op, a, b frag) frag {
	p := opPrec(op)
	left := a.text
	if a.prec < p {
		left = "(" + left + ")"
	}
	right := b.text
	if b.prec <= p {
		right = "(" + right + ")"
	}
	if op == OpRoot {
		// degree first: "b root a" is the b-th root of a
		return frag{right + " root " + left, p}
	}
	return frag{left + string(op) + right, p}
}
