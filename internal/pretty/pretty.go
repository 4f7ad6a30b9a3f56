// Package pretty renders solved puzzles for humans. All cosmetic glyph
// substitution (× ÷ √ Σ) lives here; the engine and the machine formats
// keep the plain ASCII tokens.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"numex-core/solver"

	"numex/internal/output"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	exprStyle    = lipgloss.NewStyle()
	scoreStyle   = lipgloss.NewStyle().Faint(true)
	closestStyle = lipgloss.NewStyle().Italic(true)
)

// Display substitutes the cosmetic glyphs into an engine expression.
func Display(expr string) string {
	expr = strings.ReplaceAll(expr, "sqrt", "√")
	expr = strings.ReplaceAll(expr, "*", "×")
	expr = strings.ReplaceAll(expr, "/", "÷")
	return expr
}

// SigmaText renders the summation part: "Σ i for i=start..end".
func SigmaText(s *solver.Sigma) string {
	return fmt.Sprintf("Σ %s for i=%d..%d", s.Body, s.Start, s.End)
}

// SolutionText renders one solution without the trailing value.
func SolutionText(s solver.Solution) string {
	if s.Type == solver.TypeSigma && s.Sigma != nil {
		sum := (s.Sigma.Start + s.Sigma.End) * (s.Sigma.End - s.Sigma.Start + 1) / 2
		if s.Expr == "" {
			return SigmaText(s.Sigma)
		}
		return fmt.Sprintf("%s where %d = %s", Display(s.Expr), sum, SigmaText(s.Sigma))
	}
	return Display(s.Expr)
}

// WriteResults renders every solved puzzle as an indented block.
func WriteResults(w io.Writer, list []output.Solved) error {
	for i, s := range list {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeOne(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, s output.Solved) error {
	p := s.Puzzle
	title := fmt.Sprintf("%s: %s -> %d (level %s)", p.ID, joinInts(p.Numbers), p.Target, p.Level)
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(s.Result.Exact) == 0 {
		if _, err := fmt.Fprintln(w, "  no exact solution"); err != nil {
			return err
		}
	}
	for i, sol := range s.Result.Exact {
		line := fmt.Sprintf("  %d. %s = %d %s", i+1,
			exprStyle.Render(SolutionText(sol)), sol.Value,
			scoreStyle.Render(fmt.Sprintf("[score %d]", sol.Score)))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if c := s.Result.Closest; c != nil && c.Distance > 0 {
		line := fmt.Sprintf("  closest: %s = %d (off by %d)",
			SolutionText(c.Solution), c.Value, c.Distance)
		if _, err := fmt.Fprintln(w, closestStyle.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
