// Package permute generates the distinct orderings of a number multiset.
package permute

import (
	"strconv"
	"strings"
)

// Distinct returns all orderings of nums, collapsing orderings that are
// identical as sequences (which happens when nums has repeated values).
// Built by inserting each head element at every position into the
// permutations of the tail, then deduplicating.
func Distinct(nums []int) [][]int {
	if len(nums) == 0 {
		return nil
	}
	perms := build(nums)
	seen := make(map[string]struct{}, len(perms))
	out := make([][]int, 0, len(perms))
	for _, p := range perms {
		k := key(p)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

func build(nums []int) [][]int {
	if len(nums) == 1 {
		return [][]int{{nums[0]}}
	}
	head := nums[0]
	var out [][]int
	for _, rest := range build(nums[1:]) {
		for i := 0; i <= len(rest); i++ {
			p := make([]int, 0, len(rest)+1)
			p = append(p, rest[:i]...)
			p = append(p, head)
			p = append(p, rest[i:]...)
			out = append(out, p)
		}
	}
	return out
}

func key(p []int) string {
	var b strings.Builder
	for i, n := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
