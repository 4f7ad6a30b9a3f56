// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"numex/internal/jsonlutil"
	"numex/internal/output"
)

// StartResultJSONLWriter streams each solved puzzle as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- output.Solved, <-chan error) {
	return jsonlutil.Start[output.Solved](out, bufSize,
		func(enc *json.Encoder, s output.Solved) error {
			return enc.Encode(output.ToAPIResult(s))
		},
		IsBrokenPipe,
	)
}
