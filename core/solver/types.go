package solver

import "numex-core/rpn"

// Solution types.
const (
	TypeNormal = "normal"
	TypeSigma  = "sigma"
)

// MaxExact is the number of exact solutions kept after ranking.
const MaxExact = 3

// Sigma describes a closed-form sum of consecutive integers,
// Σ i for i in [Start, End].
type Sigma struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Body  string `json:"body"`
}

// Solution is one found expression. For TypeSigma, Sigma is present and
// Expr/RPN describe the remaining non-sigma part, if any, conceptually
// combined with the sum.
type Solution struct {
	Value int      `json:"value"`
	Expr  string   `json:"expression"`
	RPN   rpn.Expr `json:"rpn"`
	Type  string   `json:"type"`
	Sigma *Sigma   `json:"sigma,omitempty"`
	Score int      `json:"score"`
}

// Closest is the best-effort candidate nearest the target.
type Closest struct {
	Solution
	Distance int `json:"distance"`
}

// Result is the final snapshot of one search: at most MaxExact exact
// solutions sorted ascending by score, and the closest candidate, which
// is nil only when nothing was ever evaluated.
type Result struct {
	Exact   []Solution `json:"exact_solutions"`
	Closest *Closest   `json:"closest,omitempty"`
}
