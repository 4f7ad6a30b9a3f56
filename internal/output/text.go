// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"numex-core/solver"
)

// WriteText prints one TSV line per exact solution plus one for the
// closest candidate. Cosmetic glyph substitution is the pretty layer's
// job; this stays machine-readable.
func WriteText(w io.Writer, list []Solved, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		for _, sol := range s.Result.Exact {
			if err := writeRow(w, s.Puzzle.ID, "exact", sol, 0); err != nil {
				return err
			}
		}
		if c := s.Result.Closest; c != nil {
			if err := writeRow(w, s.Puzzle.ID, "closest", c.Solution, c.Distance); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRow(w io.Writer, id, kind string, sol solver.Solution, distance int) error {
	sig := "-"
	if sol.Sigma != nil {
		sig = fmt.Sprintf("%d..%d", sol.Sigma.Start, sol.Sigma.End)
	}
	expr := sol.Expr
	if expr == "" {
		expr = "-"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
		id, kind, sol.Value, distance, sol.Score, sol.Type, expr, sig)
	return err
}
