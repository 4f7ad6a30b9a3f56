// Package pipeline fans puzzles out to a worker pool and hands results
// back to a visit callback in input order.
//
// The only contract to implement is Searcher. This keeps the pipeline
// swappable and testable.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"numex-core/puzzle"
	"numex-core/rpn"
	"numex-core/solver"
)

// Searcher solves a single puzzle. Production code uses solver.Solve.
type Searcher func(numbers []int, target int, level rpn.Level) solver.Result

// Config controls the solving pipeline.
type Config struct {
	Threads int // number of worker goroutines (0 = GOMAXPROCS)
	Search  Searcher
}

// ForEachPuzzle solves every puzzle concurrently and calls visit once per
// puzzle, in the order the puzzles were supplied. It returns the first
// error encountered (including context cancellation).
func ForEachPuzzle(
	ctx context.Context,
	cfg Config,
	puzzles []puzzle.Puzzle,
	visit func(p puzzle.Puzzle, r solver.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}

	type job struct {
		idx int
		p   puzzle.Puzzle
	}
	type done struct {
		idx int
		r   solver.Result
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					r := cfg.Search(j.p.Numbers, j.p.Target, j.p.Level)
					select {
					case results <- done{idx: j.idx, r: r}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: buffer out-of-order results and emit in input order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]solver.Result, cfg.Threads)
		next := 0
		for d := range results {
			if cerr != nil {
				continue
			}
			pending[d.idx] = d.r
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := visit(puzzles[next], r); err != nil && cerr == nil {
					cerr = err
				}
				next++
			}
		}
	}()

	// Feed work
feed:
	for i, p := range puzzles {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, p: p}:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return ctx.Err()
}
