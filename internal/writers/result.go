// internal/writers/result.go
package writers

import (
	"io"

	"numex/internal/output"
	"numex/internal/pretty"
)

func init() {
	Register("text", func(w io.Writer, list []output.Solved, o Options) error {
		if o.Pretty {
			return pretty.WriteResults(w, list)
		}
		return output.WriteText(w, list, o.Header)
	})
	Register("json", func(w io.Writer, list []output.Solved, o Options) error {
		return output.WriteJSON(w, list)
	})
	Register("jsonl", func(w io.Writer, list []output.Solved, o Options) error {
		in, done := StartResultJSONLWriter(w, 0)
		for _, s := range list {
			in <- s
		}
		close(in)
		return <-done
	})
}
