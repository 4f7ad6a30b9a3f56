// Package rpn defines the token model for postfix expressions and the
// stack machine that evaluates them. It never imports solver, output, or
// cli; keep it domain-only.
package rpn

import "strconv"

// Op is an operator symbol. Binary: + - * / ^ root. Unary: sqrt !.
type Op string

const (
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "*"
	OpDiv  Op = "/"
	OpPow  Op = "^"
	OpRoot Op = "root"
	OpSqrt Op = "sqrt"
	OpFact Op = "!"
)

// Unary reports whether the operator pops a single operand.
func (o Op) Unary() bool { return o == OpSqrt || o == OpFact }

// Token is either a number or an operator. Op == "" marks a number.
type Token struct {
	Op Op
	N  int
}

// Num returns a number token.
func Num(n int) Token { return Token{N: n} }

// Operator returns an operator token.
func Operator(op Op) Token { return Token{Op: op} }

// IsNum reports whether the token is a number.
func (t Token) IsNum() bool { return t.Op == "" }

func (t Token) String() string {
	if t.IsNum() {
		return strconv.Itoa(t.N)
	}
	return string(t.Op)
}

// Expr is an RPN token sequence.
type Expr []Token

func (e Expr) String() string {
	s := ""
	for i, t := range e {
		if i > 0 {
			s += " "
		}
		s += t.String()
	}
	return s
}

// Clone returns an independent copy of the expression.
func (e Expr) Clone() Expr { return append(Expr(nil), e...) }
