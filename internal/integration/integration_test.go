// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"numex/internal/app"
	"numex/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEnd(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--numbers", "1,2,3,4",
		"--target", "10",
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "1+2+3+4") {
		t.Fatalf("expected 1+2+3+4 in output, got:\n%s", out.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--numbers", "3,5",
		"--target", "8",
		"--output", "json",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var results []api.ResultV1
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if len(results) != 1 || len(results[0].Exact) == 0 {
		t.Fatalf("want one result with exact solutions, got %+v", results)
	}
	if results[0].Exact[0].Expr != "3+5" {
		t.Errorf("want 3+5, got %q", results[0].Exact[0].Expr)
	}
}

func TestPuzzleFileBatchKeepsInputOrder(t *testing.T) {
	tsv := write(t, "itest_puzzles.tsv",
		"# id  numbers  target  level\n"+
			"z9\t1,2\t3\tB\n"+
			"a1\t2,2\t4\tB\n")
	defer os.Remove(tsv)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--puzzles", tsv,
		"--output", "jsonl",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSONL lines, got %d:\n%s", len(lines), out.String())
	}
	var first api.ResultV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("bad JSONL: %v", err)
	}
	if first.PuzzleID != "z9" {
		t.Errorf("file order not preserved, first = %q", first.PuzzleID)
	}
}

func TestSortFlagOrdersByPuzzleID(t *testing.T) {
	tsv := write(t, "itest_sort.tsv",
		"z9\t1,2\t3\tB\n"+
			"a1\t2,2\t4\tB\n")
	defer os.Remove(tsv)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--puzzles", tsv,
		"--sort",
		"--output", "jsonl",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var first api.ResultV1
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("bad JSONL: %v", err)
	}
	if first.PuzzleID != "a1" {
		t.Errorf("--sort not applied, first = %q", first.PuzzleID)
	}
}

func TestParallelEqualsSerial(t *testing.T) {
	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--numbers", "1,2,3,4",
			"--target", "24",
			"--threads", fmt.Sprint(threads),
			"--output", "json",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}
	if serial, parallel := run(1), run(4); serial != parallel {
		t.Fatalf("parallel output differs from serial")
	}
}

func TestMaxSolutionsTrims(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--numbers", "1,2,3,4",
		"--target", "10",
		"--max-solutions", "1",
		"--output", "json",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var results []api.ResultV1
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(results[0].Exact) != 1 {
		t.Fatalf("want exactly 1 solution, got %d", len(results[0].Exact))
	}
}

func TestStrictExitWhenNoExact(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--numbers", "2,3",
		"--target", "100",
		"--strict",
	}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("want exit 1 under --strict with no exact solution, got %d", code)
	}
	if !strings.Contains(out.String(), "closest") {
		t.Errorf("closest row missing:\n%s", out.String())
	}
}

func TestUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--numbers", "1,2"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("want exit 2 for usage error, got %d", code)
	}
	if errBuf.Len() == 0 {
		t.Fatalf("expected an error message on stderr")
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--version"}, &out, &errBuf)
	if code != 0 || !strings.Contains(out.String(), "numex version") {
		t.Fatalf("version output wrong (exit %d): %q", code, out.String())
	}
}

func TestNoArgsPrintsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run(nil, &out, &errBuf)
	if code != 0 {
		t.Fatalf("want exit 0 for bare invocation, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage of numex") {
		t.Fatalf("usage text missing:\n%s", out.String())
	}
}
