// Package puzzle defines the batch input format: one puzzle per TSV row.
package puzzle

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"numex-core/rpn"
)

// Puzzle is one solve request.
type Puzzle struct {
	ID      string
	Numbers []int
	Target  int
	Level   rpn.Level
}

// LoadTSV reads puzzles from a whitespace-separated file:
//
//	id  numbers(comma-separated)  target  [level]
//
// Blank lines and #-comments are skipped. A missing level defaults to B.
func LoadTSV(path string) ([]Puzzle, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Puzzle
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		// Accept 3 (id numbers target) or 4 (… level) fields.
		if len(f) < 3 || len(f) > 4 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		p := Puzzle{ID: f[0], Level: rpn.LevelBasic}
		p.Numbers, err = ParseNumbers(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d %v", path, ln, err)
		}
		if p.Target, err = strconv.Atoi(f[2]); err != nil {
			return nil, fmt.Errorf("%s:%d bad target: %v", path, ln, err)
		}
		if len(f) == 4 {
			p.Level = rpn.Level(f[3])
			if !p.Level.Valid() {
				return nil, fmt.Errorf("%s:%d bad level %q", path, ln, f[3])
			}
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseNumbers parses a comma-separated list of non-negative integers.
func ParseNumbers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %v", p, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative number %d", n)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("no numbers in %q", s)
	}
	return nums, nil
}
