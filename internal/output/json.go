// internal/output/json.go
package output

import (
	"io"

	"numex/internal/jsonutil"
	"numex/pkg/api"
)

func toAPIResults(list []Solved) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPIResult(s))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []Solved) error {
	return jsonutil.EncodePretty(w, toAPIResults(list))
}
