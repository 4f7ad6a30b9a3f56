// pkg/api/results_v1.go
package api

// SigmaV1 is the closed-form summation part of a sigma solution.
type SigmaV1 struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Body  string `json:"body"`
}

// SolutionV1 is the stable JSON/JSONL schema for one found expression.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SolutionV1 struct {
	Value int      `json:"value"`
	Expr  string   `json:"expression"`
	RPN   []string `json:"rpn,omitempty"`
	Type  string   `json:"type"` // "normal" | "sigma"
	Sigma *SigmaV1 `json:"sigma,omitempty"`
	Score int      `json:"score"`
}

// ClosestV1 is the nearest-miss candidate.
type ClosestV1 struct {
	SolutionV1
	Distance int `json:"distance"`
}

// ResultV1 is the stable schema for one solved puzzle.
type ResultV1 struct {
	PuzzleID string       `json:"puzzle_id,omitempty"`
	Numbers  []int        `json:"numbers"`
	Target   int          `json:"target"`
	Level    string       `json:"level"`
	Exact    []SolutionV1 `json:"exact_solutions"`
	Closest  *ClosestV1   `json:"closest,omitempty"`
}
