// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"numex/internal/cli"
	"numex/internal/cmdutil"
	"numex/internal/common"
	"numex/internal/config"
	"numex/internal/output"
	"numex/internal/pipeline"
	"numex/internal/version"
	"numex/internal/writers"

	"numex-core/puzzle"
	"numex-core/rpn"
	"numex-core/solver"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("numex")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "numex version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	applyConfig(&opts, cfg, stderr)

	var puzzles []puzzle.Puzzle
	if opts.PuzzleFile != "" {
		puzzles, err = puzzle.LoadTSV(opts.PuzzleFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	} else {
		puzzles = []puzzle.Puzzle{{
			ID:      "manual",
			Numbers: opts.Numbers,
			Target:  opts.Target,
			Level:   rpn.Level(opts.Level),
		}}
	}
	// An explicit --level overrides per-row levels from the file.
	if opts.PuzzleFile != "" && opts.Level != "" {
		for i := range puzzles {
			puzzles[i].Level = rpn.Level(opts.Level)
		}
	}
	if len(puzzles) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no puzzles in %s", opts.PuzzleFile)
	}

	solved := make([]output.Solved, 0, len(puzzles))
	err = pipeline.ForEachPuzzle(parent,
		pipeline.Config{Threads: opts.Threads, Search: solver.Solve},
		puzzles,
		func(p puzzle.Puzzle, r solver.Result) error {
			if n := opts.MaxSolutions; n > 0 && len(r.Exact) > n {
				r.Exact = r.Exact[:n]
			}
			solved = append(solved, output.Solved{Puzzle: p, Result: r})
			return nil
		})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Sort {
		common.SortSolved(solved)
	}
	wErr := writers.Write(opts.Output, outw, solved, writers.Options{
		Header: opts.Header,
		Pretty: opts.Pretty,
	})
	if wErr == nil {
		wErr = outw.Flush()
	}
	if writers.IsBrokenPipe(wErr) {
		return 0
	}
	if wErr != nil {
		_, _ = fmt.Fprintln(stderr, wErr)
		return 3
	}

	if opts.Strict {
		for _, s := range solved {
			if len(s.Result.Exact) == 0 {
				return 1
			}
		}
	}
	return 0
}

// applyConfig fills in flag defaults from the config-file baseline.
func applyConfig(opts *cli.Options, cfg config.Config, stderr io.Writer) {
	if opts.Level == "" {
		opts.Level = cfg.Level
	}
	if opts.Output == "" {
		opts.Output = cfg.Output
	}
	if opts.Threads == 0 {
		opts.Threads = cfg.Threads
	}
	if !opts.Pretty {
		opts.Pretty = cfg.Pretty
	}
	if !rpn.Level(opts.Level).Valid() {
		cmdutil.Warnf(stderr, opts.Quiet, "config level %q invalid; using B", opts.Level)
		opts.Level = string(rpn.LevelBasic)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
