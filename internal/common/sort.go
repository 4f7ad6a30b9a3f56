// internal/common/sort.go
package common

import (
	"sort"

	"numex/internal/output"
)

// LessSolved defines a stable order for solved puzzles (for batch output).
func LessSolved(a, b output.Solved) bool {
	if a.Puzzle.ID != b.Puzzle.ID {
		return a.Puzzle.ID < b.Puzzle.ID
	}
	return a.Puzzle.Target < b.Puzzle.Target
}

func SortSolved(list []output.Solved) {
	sort.SliceStable(list, func(i, j int) bool { return LessSolved(list[i], list[j]) })
}
