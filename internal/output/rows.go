// internal/output/rows.go
package output

import (
	"numex-core/puzzle"
	"numex-core/solver"

	"numex/pkg/api"
)

// Solved pairs one puzzle with its search result; it is the unit every
// writer consumes.
type Solved struct {
	Puzzle puzzle.Puzzle
	Result solver.Result
}

// ToAPISolution converts a domain Solution to the stable wire schema (v1).
func ToAPISolution(s solver.Solution) api.SolutionV1 {
	v := api.SolutionV1{
		Value: s.Value,
		Expr:  s.Expr,
		Type:  s.Type,
		Score: s.Score,
	}
	if len(s.RPN) > 0 {
		v.RPN = make([]string, len(s.RPN))
		for i, t := range s.RPN {
			v.RPN[i] = t.String()
		}
	}
	if s.Sigma != nil {
		v.Sigma = &api.SigmaV1{Start: s.Sigma.Start, End: s.Sigma.End, Body: s.Sigma.Body}
	}
	return v
}

// ToAPIResult converts one solved puzzle to the wire schema (v1).
func ToAPIResult(s Solved) api.ResultV1 {
	r := api.ResultV1{
		PuzzleID: s.Puzzle.ID,
		Numbers:  append([]int(nil), s.Puzzle.Numbers...),
		Target:   s.Puzzle.Target,
		Level:    string(s.Puzzle.Level),
		Exact:    make([]api.SolutionV1, 0, len(s.Result.Exact)),
	}
	for _, sol := range s.Result.Exact {
		r.Exact = append(r.Exact, ToAPISolution(sol))
	}
	if c := s.Result.Closest; c != nil {
		r.Closest = &api.ClosestV1{SolutionV1: ToAPISolution(c.Solution), Distance: c.Distance}
	}
	return r
}
