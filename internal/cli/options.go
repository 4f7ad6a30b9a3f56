// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"numex/internal/cliutil"
	"numex/internal/version"

	"numex-core/puzzle"
	"numex-core/rpn"
)

// Options holds all CLI flags and arguments. String fields left empty
// defer to the config-file baseline.
type Options struct {
	// Puzzle input
	PuzzleFile string
	Numbers    []int
	Target     int
	HasTarget  bool
	Level      string

	// Performance
	Threads int

	// MaxSolutions trims the exact list below the engine's cap; 0 keeps
	// everything the engine returns.
	MaxSolutions int

	// Output
	Output string
	Sort   bool
	Pretty bool
	Header bool // true unless --no-header
	Quiet  bool
	Strict bool // exit 1 when a puzzle has no exact solution

	ConfigPath string
	Version    bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var numbers, target string

	name := fs.Name()
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: number-puzzle expression search

Finds expressions over a set of numbers that reach a target value,
ranked by complexity. Operator availability is gated by --level:
B = + - * /, 1 adds ^, 2 adds sqrt/root, 3 adds ! and summations.

Shorthand: %s NUMBERS TARGET [flags], e.g. %s 1,2,3,4 10

Version: %s

Usage of %s:
`, name, name, name, version.Version, name)
		fs.PrintDefaults()
	}

	// Puzzle input
	fs.StringVar(&opt.PuzzleFile, "puzzles", "", "TSV puzzle file (id numbers target [level]) [*]")
	fs.StringVar(&numbers, "numbers", "", "comma-separated input numbers [*]")
	fs.StringVar(&target, "target", "", "target value [*]")
	fs.StringVar(&opt.Level, "level", "", "difficulty level: B | 1 | 2 | 3 [B]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.IntVar(&opt.MaxSolutions, "max-solutions", 0, "keep at most N exact solutions per puzzle (0 = engine cap) [0]")

	fs.StringVar(&opt.Output, "output", "", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort batch results by puzzle id [false]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "human rendering with × ÷ √ Σ glyphs (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Strict, "strict", false, "exit 1 when any puzzle lacks an exact solution [false]")

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML config file (default $"+"NUMEX_CONFIG) []")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Positional shorthand: numex NUMBERS TARGET [flags]
	if len(posArgs) > 0 {
		if opt.PuzzleFile != "" || numbers != "" || target != "" {
			return opt, errors.New("positional arguments conflict with --puzzles/--numbers/--target")
		}
		if len(posArgs) != 2 {
			return opt, fmt.Errorf("expected NUMBERS TARGET, got %d positional arguments", len(posArgs))
		}
		numbers, target = posArgs[0], posArgs[1]
	}

	// Validation
	usingFile := opt.PuzzleFile != ""
	usingInline := numbers != "" || target != ""
	switch {
	case usingFile && usingInline:
		return opt, errors.New("--puzzles conflicts with --numbers/--target")
	case usingInline && (numbers == "" || target == ""):
		return opt, errors.New("--numbers and --target must be supplied together")
	case !usingFile && !usingInline:
		return opt, errors.New("provide --puzzles or --numbers/--target")
	}
	if usingInline {
		var err error
		if opt.Numbers, err = puzzle.ParseNumbers(numbers); err != nil {
			return opt, fmt.Errorf("--numbers: %w", err)
		}
		if opt.Target, err = strconv.Atoi(target); err != nil {
			return opt, fmt.Errorf("--target: %w", err)
		}
		opt.HasTarget = true
	}
	if opt.Level != "" && !rpn.Level(opt.Level).Valid() {
		return opt, fmt.Errorf("invalid --level %q", opt.Level)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.MaxSolutions < 0 {
		return opt, errors.New("--max-solutions must be >= 0")
	}
	if opt.Output != "" && opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
