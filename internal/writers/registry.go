// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"numex/internal/output"
)

// Options carries presentation switches shared by the writers.
type Options struct {
	Header bool // text/TSV header line
	Pretty bool // human rendering instead of TSV (text format only)
}

// Writer registry (format → handler). Register in init() blocks from the
// writer files; last registration wins.
var resultWriters = map[string]func(w io.Writer, list []output.Solved, o Options) error{}

// Register installs a result writer for a format name.
func Register(format string, fn func(io.Writer, []output.Solved, Options) error) {
	resultWriters[format] = fn
}

// Formats returns the registered format names; used for flag validation.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for k := range resultWriters {
		out = append(out, k)
	}
	return out
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := resultWriters[format]
	return ok
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, list []output.Solved, o Options) error {
	fn, ok := resultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, o)
}
